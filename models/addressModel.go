package models

type Address struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	UserID     uint   `json:"user_id" gorm:"index;not null"`
	Street     string `json:"street" gorm:"not null"`
	City       string `json:"city" gorm:"size:100;not null"`
	State      string `json:"state" gorm:"size:100;not null"`
	Country    string `json:"country" gorm:"size:100;not null"`
	PostalCode string `json:"postal_code" gorm:"size:20;not null"`
	Landmark   string `json:"landmark"`
}

// AddressSnapshot is the copy of an address stored on an order.
type AddressSnapshot struct {
	ID         uint   `json:"id"`
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	Country    string `json:"country"`
	PostalCode string `json:"postal_code"`
	Landmark   string `json:"landmark,omitempty"`
}

func (a Address) Snapshot() AddressSnapshot {
	return AddressSnapshot{
		ID:         a.ID,
		Street:     a.Street,
		City:       a.City,
		State:      a.State,
		Country:    a.Country,
		PostalCode: a.PostalCode,
		Landmark:   a.Landmark,
	}
}

type AddressData struct {
	Street     string `json:"street" binding:"required"`
	City       string `json:"city" binding:"required"`
	State      string `json:"state" binding:"required"`
	Country    string `json:"country" binding:"required"`
	PostalCode string `json:"postal_code" binding:"required"`
	Landmark   string `json:"landmark"`
}
