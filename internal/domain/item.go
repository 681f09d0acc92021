package domain

import (
	"time"

	"github.com/google/uuid"
)

// ItemType - тип товара на маркетплейсе
type ItemType string

const (
	ItemBoard       ItemType = "board"
	ItemWheels      ItemType = "wheels"
	ItemTrucks      ItemType = "trucks"
	ItemBearings    ItemType = "bearings"
	ItemGriptape    ItemType = "griptape"
	ItemHardware    ItemType = "hardware"
	ItemTools       ItemType = "tools"
	ItemAccessories ItemType = "accessories"
	ItemClothing    ItemType = "clothing"
	ItemOther       ItemType = "other"
)

// ItemCondition - состояние б/у товара
type ItemCondition string

const (
	ConditionNew     ItemCondition = "new"
	ConditionLikeNew ItemCondition = "like_new"
	ConditionGood    ItemCondition = "good"
	ConditionFair    ItemCondition = "fair"
	ConditionPoor    ItemCondition = "poor"
)

var itemTypes = map[ItemType]struct{}{
	ItemBoard: {}, ItemWheels: {}, ItemTrucks: {}, ItemBearings: {},
	ItemGriptape: {}, ItemHardware: {}, ItemTools: {}, ItemAccessories: {},
	ItemClothing: {}, ItemOther: {},
}

var itemConditions = map[ItemCondition]struct{}{
	ConditionNew: {}, ConditionLikeNew: {}, ConditionGood: {},
	ConditionFair: {}, ConditionPoor: {},
}

func IsValidItemType(t string) bool {
	_, ok := itemTypes[ItemType(t)]
	return ok
}

func IsValidItemCondition(c string) bool {
	_, ok := itemConditions[ItemCondition(c)]
	return ok
}

// Item - товар на маркетплейсе
type Item struct {
	ID          uuid.UUID     `json:"id" db:"id"`
	UserID      uuid.UUID     `json:"user_id" db:"user_id"`
	Title       string        `json:"title" db:"title"`
	Description string        `json:"description" db:"description"`
	Type        ItemType      `json:"type" db:"type"`
	Condition   ItemCondition `json:"condition" db:"condition"`
	Price       float64       `json:"price" db:"price"`
	ImageURL    *string       `json:"image_url,omitempty" db:"image_url"`
	IsSold      bool          `json:"is_sold" db:"is_sold"`
	BuyerID     *uuid.UUID    `json:"buyer_id,omitempty" db:"buyer_id"`
	CreatedAt   time.Time     `json:"created_at" db:"created_at"`
}
