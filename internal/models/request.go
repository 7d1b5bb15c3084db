package models

// ContactInformation is the customer block captured on the contact step.
type ContactInformation struct {
	FullName      string `json:"fullName"`
	Email         string `json:"email"`
	ContactNumber string `json:"contactNumber"`
	Address       string `json:"address"`
}

// SizeSelection is one size row of the composed order, quantity included
// even when zero; zero rows are dropped at persistence time.
type SizeSelection struct {
	SizeID   string `json:"sizeId"`
	Size     string `json:"size"`
	Quantity int    `json:"quantity"`
}

// OrderData is the order descriptor posted as the orderData multipart
// field. It carries both the ids used for persistence and the resolved
// display names used for the notification email.
type OrderData struct {
	ProductTypeID string `json:"productTypeId"`
	BrandID       string `json:"brandId"`
	ColorID       string `json:"colorId"`

	ProductType string `json:"productType"`
	Brand       string `json:"brand"`
	Color       string `json:"color"`

	SizeSelection      []SizeSelection    `json:"sizeSelection"`
	ContactInformation ContactInformation `json:"contactInformation"`
}

// AssetFile is the content of one attached asset slot, already read out
// of the multipart request.
type AssetFile struct {
	Filename string
	Data     []byte
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
