package catalog

import "github.com/jask/themenu/internal/order"

// Builtin returns the house menu. It panics only if the table below is
// malformed.
func Builtin() *Catalog {
	c, err := New(BuiltinCategories())
	if err != nil {
		panic(err)
	}
	return c
}

// BuiltinCategories is the raw house menu used to seed catalog stores.
func BuiltinCategories() []Category {
	return []Category{
		{Name: "Starters", Items: []order.MenuItem{
			{ID: "1", Name: "Butternut Sage Soup", Price: 80, Description: "Creamy butternut squash soup with fresh sage", Image: "ButternutSagesoupStarter.jpg"},
			{ID: "2", Name: "Grilled Octopus", Price: 120, Description: "Tender octopus with olive oil and herbs", Image: "OctopusStarter.jpg"},
			{ID: "3", Name: "Garlic Snails", Price: 100, Description: "Escargot in garlic herb butter", Image: "SnailsStarter.jpg"},
			{ID: "4", Name: "Sticky Wings", Price: 60, Description: "Crispy chicken wings with sweet glaze", Image: "StickyWingsStarter.jpg"},
			{ID: "5", Name: "Steamed Bao Buns", Price: 80, Description: "Soft bao buns with savory filling", Image: "BaobunsStarter.jpg"},
		}},
		{Name: "Mains", Items: []order.MenuItem{
			{ID: "6", Name: "Chicken & Vegetables", Price: 180, Description: "Grilled chicken with seasonal vegetables", Image: "ChickenVergieMain.jpg"},
			{ID: "7", Name: "Grilled Ribeye Steak", Price: 220, Description: "Prime ribeye with herb butter", Image: "GrilledRibeyeSteakMain.jpg"},
			{ID: "8", Name: "Pan-Seared Duck Breast", Price: 280, Description: "Duck breast with crispy potatoes", Image: "PanSearedDuckBreastWithCrispyPotatoesCharredMain.jpg"},
			{ID: "9", Name: "Fresh Vegetable Salad", Price: 120, Description: "Seasonal greens with light dressing", Image: "VegetableSaladMain.jpg"},
			{ID: "10", Name: "Seafood Pasta", Price: 220, Description: "Fresh seafood in tomato basil sauce", Image: "SeaFoodPastaMain.jpg"},
		}},
		{Name: "Desserts", Items: []order.MenuItem{
			{ID: "11", Name: "Brownie with Vanilla Ice Cream", Price: 80, Description: "Warm chocolate brownie à la mode", Image: "BrownieVanillaIceCreamDessert.jpg"},
			{ID: "12", Name: "New York Cheesecake", Price: 90, Description: "Classic creamy cheesecake", Image: "CheeseCakeDessert.jpg"},
			{ID: "13", Name: "Chocolate Boom", Price: 100, Description: "Decadent chocolate explosion", Image: "ChocolateBoomDessert.jpg"},
			{ID: "14", Name: "Chocolate Cracker Mousse", Price: 110, Description: "Light mousse with crispy layers", Image: "ChocolateCrackermuseDessert.jpg"},
			{ID: "15", Name: "Waffle with Ice Cream", Price: 95, Description: "Belgian waffle with premium ice cream", Image: "WaffleIcecreamDessert.jpg"},
		}},
		{Name: "Beverages", Items: []order.MenuItem{
			{ID: "16", Name: "Cherry Delight", Price: 80, Description: "Refreshing cherry cocktail", Image: "CherryDrinkBeverage.jpg"},
			{ID: "17", Name: "Gin & Tonic", Price: 120, Description: "Classic gin with premium tonic", Image: "GinTonicBeverage.jpg"},
			{ID: "18", Name: "Fresh Orange Juice", Price: 60, Description: "Freshly squeezed orange juice", Image: "OrangeJuiceBeverage.jpg"},
			{ID: "19", Name: "Red Wine Selection", Price: 100, Description: "House red wine by the glass", Image: "RedWineBeverage.jpg"},
			{ID: "20", Name: "White Wine Selection", Price: 100, Description: "House white wine by the glass", Image: "WhiteWineBeverage.jpg"},
		}},
	}
}
