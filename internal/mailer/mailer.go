package mailer

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"time"

	"gopkg.in/gomail.v2"

	"github.com/devteamsyntacticsinc/custom-product-designer/internal/config"
	"github.com/devteamsyntacticsinc/custom-product-designer/internal/models"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// Mailer delivers order notifications to the configured operator
// address over SMTP. One message per order, no retry, no queue.
type Mailer struct {
	dialer   *gomail.Dialer
	from     string
	operator string
	tmpl     *template.Template
}

func New(cfg *config.Config) (*Mailer, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse mail templates: %w", err)
	}

	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
	dialer.SSL = cfg.SMTPSecure

	return &Mailer{
		dialer:   dialer,
		from:     cfg.MailFrom,
		operator: cfg.OperatorEmail,
		tmpl:     tmpl,
	}, nil
}

type sizeRow struct {
	Size     string
	Quantity int
}

type assetRow struct {
	Filename  string
	Placement string
}

type orderEmail struct {
	ReferenceID string
	Date        string
	Contact     models.ContactInformation
	ProductType string
	Brand       string
	Color       string
	Sizes       []sizeRow
	TotalItems  int
	Assets      []assetRow
}

// SendOrderNotification renders and sends the new-order email. Callers
// treat a returned error as log-and-swallow; the order stands either way.
func (m *Mailer) SendOrderNotification(order models.OrderData, assets map[string]models.AssetFile, customerID string) error {
	body, err := m.RenderOrderNotification(order, assets, customerID)
	if err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", m.operator)
	msg.SetHeader("Subject", "New Order Received - "+order.ContactInformation.FullName)
	msg.SetBody("text/html", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send order notification: %w", err)
	}
	return nil
}

// RenderOrderNotification builds the HTML body. Only sizes with a
// positive quantity and slots with an attached file make it into the
// tables.
func (m *Mailer) RenderOrderNotification(order models.OrderData, assets map[string]models.AssetFile, customerID string) (string, error) {
	data := orderEmail{
		ReferenceID: customerID,
		Date:        time.Now().Format("Jan 2, 2006 3:04 PM"),
		Contact:     order.ContactInformation,
		ProductType: order.ProductType,
		Brand:       order.Brand,
		Color:       order.Color,
	}

	for _, item := range order.SizeSelection {
		data.TotalItems += item.Quantity
		if item.Quantity > 0 {
			data.Sizes = append(data.Sizes, sizeRow{Size: item.Size, Quantity: item.Quantity})
		}
	}

	for _, slot := range models.AssetSlots {
		file, ok := assets[slot]
		if !ok || len(file.Data) == 0 {
			continue
		}
		data.Assets = append(data.Assets, assetRow{
			Filename:  file.Filename,
			Placement: models.PlacementLabel(slot),
		})
	}

	var buf bytes.Buffer
	if err := m.tmpl.ExecuteTemplate(&buf, "order_notification.tmpl", data); err != nil {
		return "", fmt.Errorf("failed to render order notification: %w", err)
	}
	return buf.String(), nil
}
