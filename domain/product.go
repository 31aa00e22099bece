package domain

import (
	"time"

	"gorm.io/datatypes"
)

// CREATE TABLE public.products (
//     id              BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     product_name    TEXT NOT NULL,
//     category        TEXT NOT NULL,
//     subcategory     TEXT,
//     price           NUMERIC NOT NULL,
//     size            TEXT,
//     unit            TEXT NOT NULL,
//     quantity        NUMERIC DEFAULT 0,
//     is_active       BOOLEAN DEFAULT TRUE,
//     is_featured     BOOLEAN DEFAULT FALSE,
//     attributes      JSONB,
//     created_at      TIMESTAMPTZ DEFAULT NOW(),
//     updated_at      TIMESTAMPTZ DEFAULT NOW()
// );
// CREATE INDEX products_category_active_idx ON public.products (category, is_active);

type Product struct {
	ID          uint64            `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string            `gorm:"column:product_name;type:text;not null" json:"name"`
	Category    string            `gorm:"column:category;type:text;not null" json:"category"`
	Subcategory string            `gorm:"column:subcategory;type:text" json:"subcategory"`
	Price       float64           `gorm:"column:price;type:numeric;not null" json:"price"`
	Size        string            `gorm:"column:size;type:text" json:"size"`
	Unit        string            `gorm:"column:unit;type:text;not null" json:"unit"`
	Quantity    float64           `gorm:"column:quantity;type:numeric;default:0" json:"quantity"`
	IsActive    bool              `gorm:"column:is_active" json:"isActive"`
	IsFeatured  bool              `gorm:"column:is_featured;default:false" json:"isFeatured"`
	Attributes  datatypes.JSONMap `gorm:"column:attributes;type:jsonb" json:"attributes,omitempty"`
	CreatedAt   time.Time         `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time         `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (Product) TableName() string {
	return "products"
}

// InStock reports whether the product can currently be sold.
func (p Product) InStock() bool {
	return p.IsActive && p.Quantity > 0
}
