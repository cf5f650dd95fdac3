package food

// Categories the frontend offers for a food item. The extraction prompt asks
// the model to pick from this same set.
var Categories = []string{
	"野菜", "果物", "乳製品", "肉類", "魚介類", "穀物", "調味料", "飲料", "冷凍食品", "卵", "その他",
}

// Food is a tracked perishable item. ExpirationDate is a calendar date in
// YYYY-MM-DD form; there is deliberately no time component.
type Food struct {
	ID             string `json:"id" db:"id"`
	UserID         string `json:"user_id" db:"user_id"`
	Name           string `json:"name" db:"name"`
	Category       string `json:"category" db:"category"`
	ExpirationDate string `json:"expiration_date" db:"expiration_date"`
	ImageURL       string `json:"image_url" db:"image_url"`
}
