package models

// Month is a budgeting period. It owns its accounts; deleting a month removes
// the whole tree underneath it.
type Month struct {
	Base
	Name     string `gorm:"not null" json:"name"`
	Archived bool   `gorm:"default:false" json:"archived"`

	Accounts []Account `gorm:"foreignKey:MonthID" json:"accounts,omitempty"`
}
