package entity

type ProductCategory struct {
	Base
	Name        string  `db:"name"`
	Description *string `db:"description"`
}
