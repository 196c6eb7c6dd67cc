package models

// Customer represents a boiler service customer.
type Customer struct {
	ID          string `bson:"id" json:"id"`
	Name        string `bson:"name" json:"name"`
	Email       string `bson:"email" json:"email"`
	Phone       string `bson:"phone" json:"phone"`
	Address     string `bson:"address" json:"address"` // Free-text postal address; region is the second comma-separated part.
	BoilerModel string `bson:"boiler_model" json:"boiler_model"`
	InstallDate string `bson:"install_date" json:"install_date"` // "YYYY-MM-DD"
}
