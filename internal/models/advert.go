package models

import (
	"InfoCity/internal/query"
	"fmt"
)

type Advert struct {
	BaseModel
	Message  string `gorm:"type:text;not null" json:"message"`
	Location string `gorm:"type:varchar(255)" json:"location"`
	Type     string `gorm:"type:varchar(50);index" json:"type"`
	TownID   *uint  `gorm:"index" json:"town_id,omitempty"`
	Town     *Town  `gorm:"foreignKey:TownID" json:"town,omitempty"`
}

func (a *Advert) SetTown(town *Town) {
	a.Town = town
	a.TownID = &town.ID
}

func (a Advert) NamedQueries() map[string]query.Named {
	return map[string]query.Named{
		"Advert.findByTown": {Where: "town_id = @town", Order: "id"},
		"Advert.findByType": {Where: "type = @type", Order: "id"},
	}
}

func (a Advert) String() string {
	town := "none"
	if a.Town != nil {
		town = a.Town.Name
	}
	return fmt.Sprintf("Advert{id=%d, message=%s, location=%s, type=%s, town=%s}",
		a.ID, a.Message, a.Location, a.Type, town)
}

type AdvertBuilder struct {
	advert Advert
}

func NewAdvertBuilder() *AdvertBuilder {
	return &AdvertBuilder{}
}

func (b *AdvertBuilder) SetID(id uint) *AdvertBuilder {
	b.advert.ID = id
	return b
}

func (b *AdvertBuilder) SetMessage(message string) *AdvertBuilder {
	b.advert.Message = message
	return b
}

func (b *AdvertBuilder) SetLocation(location string) *AdvertBuilder {
	b.advert.Location = location
	return b
}

func (b *AdvertBuilder) SetType(kind string) *AdvertBuilder {
	b.advert.Type = kind
	return b
}

func (b *AdvertBuilder) SetTown(town *Town) *AdvertBuilder {
	b.advert.SetTown(town)
	return b
}

func (b *AdvertBuilder) Build() *Advert {
	advert := b.advert
	return &advert
}
