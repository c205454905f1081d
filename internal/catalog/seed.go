// Package catalog holds the built-in menu the app starts with.
package catalog

import (
	"github.com/christoffel/menuapp/internal/models"
	"github.com/christoffel/menuapp/internal/storage"
)

// Seed returns the initial menu: eight dishes across the four food courses
// plus the six standing drinks.
func Seed() storage.Menu {
	return storage.Menu{
		Items: []models.MenuItem{
			{ID: "1", Name: "Lobster Thermidor", Description: "Grilled lobster tail in a creamy mustard and brandy sauce.", Course: models.CourseSpecials, Price: 300},
			{ID: "2", Name: "Chef's Tasting Platter", Description: "A curated selection of the chef's favorite seasonal bites (serves two).", Course: models.CourseSpecials, Price: 350},
			{ID: "3", Name: "Seared Scallops with Herb Sauce", Description: "Pan-fried scallops served with herb and lemon dressing.", Course: models.CourseStarter, Price: 195},
			{ID: "4", Name: "Roasted Tomato Soup", Description: "Slow-roasted tomatoes blended into a rich, velvety soup.", Course: models.CourseStarter, Price: 70},
			{ID: "5", Name: "Filet Steak", Description: "Tender beef fillet with a creamy peppercorn sauce, served with potatoes.", Course: models.CourseMainCourse, Price: 220},
			{ID: "6", Name: "Pan-Fried Salmon", Description: "Salmon fillets served with a creamy dill and mustard sauce.", Course: models.CourseMainCourse, Price: 155},
			{ID: "7", Name: "Classic Crème Brûlée", Description: "A smooth vanilla custard topped with a caramelised sugar crust.", Course: models.CourseDessert, Price: 125},
			{ID: "8", Name: "Chocolate Lava Pudding", Description: "A rich chocolate sponge with a gooey molten centre.", Course: models.CourseDessert, Price: 95},
		},
		Drinks: models.DrinksData{
			Cold: []string{"Any frizzy drink", "Fruit juice's", "Ice water"},
			Hot:  []string{"Tea", "Coffee", "Hot chocolate"},
		},
	}
}
