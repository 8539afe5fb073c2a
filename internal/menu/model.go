package menu

// Menu categories as the storefront groups them.
const (
	CategoryStarters   = "Starters"
	CategoryMainCourse = "Main Course"
	CategoryDesserts   = "Desserts"
	CategoryDrinks     = "Drinks"
)

// NutritionalInfo carries the per-item nutrition facts. Protein, carbs
// and fat keep their unit suffix ("12g") as free-form strings.
type NutritionalInfo struct {
	Calories int    `json:"calories"`
	Protein  string `json:"protein"`
	Carbs    string `json:"carbs"`
	Fat      string `json:"fat"`
}

// Review is a customer review of an item. The catalog arrives with no
// reviews; the field exists so items render with an empty list.
type Review struct {
	ID      string `json:"id"`
	Author  string `json:"author"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// Item is the internal menu entity every view consumes.
type Item struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Price           float64         `json:"price"`
	Category        string          `json:"category"`
	Image           string          `json:"image"`
	IsVegetarian    bool            `json:"isVegetarian"`
	IsVegan         bool            `json:"isVegan"`
	IsSpicy         bool            `json:"isSpicy"`
	Allergens       []string        `json:"allergens"`
	NutritionalInfo NutritionalInfo `json:"nutritionalInfo"`
	Reviews         []Review        `json:"reviews"`
}
