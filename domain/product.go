package domain

import (
	"time"
)

// CREATE TABLE public.eco_products (
//     id                       BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     product_id               BIGINT,
//     product_name             TEXT,
//     category_name            TEXT NOT NULL,
//     carbon_footprint_kgco2e  NUMERIC NOT NULL DEFAULT 0,
//     water_usage_litres       NUMERIC NOT NULL DEFAULT 0,
//     eco_rating               TEXT,
//     water_rating             TEXT,
//     rating                   NUMERIC DEFAULT 0,
//     price                    NUMERIC DEFAULT 0,
//     created_at               TIMESTAMPTZ DEFAULT NOW()
// );

// Product is one catalog row. JSON names follow the catalog export format.
type Product struct {
	ID                    uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID             uint64    `gorm:"column:product_id" json:"product_id"`
	ProductName           string    `gorm:"column:product_name;type:text" json:"product_name"`
	CategoryName          string    `gorm:"column:category_name;type:text;not null" json:"category_name"`
	CarbonFootprintKgCO2e float64   `gorm:"column:carbon_footprint_kgco2e;type:numeric" json:"Carbon_Footprint_kgCO2e"`
	WaterUsageLitres      float64   `gorm:"column:water_usage_litres;type:numeric" json:"Water_Usage_Litres"`
	EcoRating             string    `gorm:"column:eco_rating;type:text" json:"Eco_Rating"`
	WaterRating           string    `gorm:"column:water_rating;type:text" json:"Water_Rating"`
	Rating                float64   `gorm:"column:rating;type:numeric;default:0" json:"rating"`
	Price                 float64   `gorm:"column:price;type:numeric;default:0" json:"price"`
	CreatedAt             time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Product) TableName() string {
	return "eco_products"
}
