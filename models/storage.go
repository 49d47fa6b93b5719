package models

import (
	"gorm.io/gorm"
	"time"
)

type StylePalette struct {
	ID         string         `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name       string         `gorm:"column:name;uniqueIndex" json:"name"`
	Background string         `gorm:"column:background" json:"background"`
	Green      string         `gorm:"column:green" json:"green"`
	Forest     string         `gorm:"column:forest" json:"forest"`
	Water      string         `gorm:"column:water" json:"water"`
	Parking    string         `gorm:"column:parking" json:"parking"`
	Streets    string         `gorm:"column:streets" json:"streets"`
	Edge       string         `gorm:"column:edge" json:"edge"`
	Building1  string         `gorm:"column:building_1" json:"building_1"`
	Building2  string         `gorm:"column:building_2" json:"building_2"`
	Building3  string         `gorm:"column:building_3" json:"building_3"`
	IsActive   bool           `gorm:"column:is_active" json:"is_active"`
	CreatedAt  time.Time      `gorm:"column:created_at" json:"-"`
	UpdatedAt  time.Time      `gorm:"column:updated_at" json:"-"`
	DeletedAt  gorm.DeletedAt `gorm:"column:deleted_at" json:"-"`
}

func (s *StylePalette) TableName() string {
	return "pretty_style.palettes"
}

// Palette converts a stored row into the palette the rule builders take.
func (s *StylePalette) Palette() Palette {
	return Palette{
		Background:      s.Background,
		Green:           s.Green,
		Forest:          s.Forest,
		Water:           s.Water,
		Parking:         s.Parking,
		Streets:         s.Streets,
		Edge:            s.Edge,
		BuildingPalette: [3]string{s.Building1, s.Building2, s.Building3},
	}
}

// ApplyPalette overwrites the color columns from a palette value.
func (s *StylePalette) ApplyPalette(p Palette) {
	s.Background = p.Background
	s.Green = p.Green
	s.Forest = p.Forest
	s.Water = p.Water
	s.Parking = p.Parking
	s.Streets = p.Streets
	s.Edge = p.Edge
	s.Building1 = p.BuildingPalette[0]
	s.Building2 = p.BuildingPalette[1]
	s.Building3 = p.BuildingPalette[2]
}

type StyleDocument struct {
	ID             string         `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name           string         `gorm:"column:name" json:"name"`
	PolygonLayerID string         `gorm:"column:polygon_layer_id" json:"polygon_layer_id"`
	LineLayerID    string         `gorm:"column:line_layer_id" json:"line_layer_id"`
	Document       string         `gorm:"column:document" json:"document"`
	CreatedAt      time.Time      `gorm:"column:created_at" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"column:updated_at" json:"-"`
	DeletedAt      gorm.DeletedAt `gorm:"column:deleted_at" json:"-"`
}

func (s *StyleDocument) TableName() string {
	return "pretty_style.style_documents"
}
