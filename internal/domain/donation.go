package domain

// SheetName is the title of the tab that holds donation rows.
const SheetName = "Material Donations"

// StatusPending is the status every donation carries at creation. Rows are
// only moved past Pending by hand, directly in the sheet.
const StatusPending = "Pending"

// Headers is the ordered header row for the donation sheet. Column order must
// match Donation.Row.
var Headers = []string{
	"Timestamp",
	"Name",
	"Email",
	"Phone",
	"Company",
	"Materials",
	"Quantity",
	"Estimated Value",
	"Comments",
	"Status",
}

// Donation represents one material donation offer from a supporter.
type Donation struct {
	Timestamp      string `json:"timestamp"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Company        string `json:"company,omitempty"`
	Materials      string `json:"materials"`
	Quantity       string `json:"quantity"`
	EstimatedValue string `json:"estimatedValue,omitempty"`
	Comments       string `json:"comments,omitempty"`
	Status         string `json:"status"`
}

// Row returns the donation as an ordered sheet row matching Headers.
func (d *Donation) Row() []string {
	return []string{
		d.Timestamp,
		d.Name,
		d.Email,
		d.Phone,
		d.Company,
		d.Materials,
		d.Quantity,
		d.EstimatedValue,
		d.Comments,
		d.Status,
	}
}
