package entity

type Venue struct {
	Base
	Name        string `db:"name"`
	Address     string `db:"address"`
	Phone       string `db:"phone"`
	Description string `db:"description"`
}
