package models

// VirtualGift is a purchasable chat gift
type VirtualGift struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// VirtualGifts is the fixed gift catalog
var VirtualGifts = []VirtualGift{
	{ID: "rose", Name: "Rose", Icon: "🌹"},
	{ID: "heart", Name: "Heart", Icon: "💖"},
	{ID: "teddy", Name: "Teddy Bear", Icon: "🧸"},
	{ID: "ring", Name: "Ring", Icon: "💍"},
}

// GiftByID looks up a gift in the catalog, nil when unknown
func GiftByID(id string) *VirtualGift {
	for i := range VirtualGifts {
		if VirtualGifts[i].ID == id {
			return &VirtualGifts[i]
		}
	}
	return nil
}
