package models

// Static fallback data served when the backend is unreachable. Kept in sync
// by hand with the seed data the dev backend starts from.

var MockProducts = []Product{
	{
		ID:            "1",
		Name:          "Espresso",
		Description:   "Strong and bold coffee shot",
		Price:         3.50,
		Category:      "coffee",
		ImageURL:      "https://images.unsplash.com/photo-1510707577719-ae7c14805e3a?w=400&h=300&fit=crop",
		IsAvailable:   true,
		StockQuantity: 100,
	},
	{
		ID:            "2",
		Name:          "Cappuccino",
		Description:   "Espresso with steamed milk foam",
		Price:         4.50,
		Category:      "coffee",
		ImageURL:      "https://images.unsplash.com/photo-1572442388796-11668a67e53d?w=400&h=300&fit=crop",
		IsAvailable:   true,
		StockQuantity: 100,
	},
	{
		ID:            "3",
		Name:          "Croissant",
		Description:   "Buttery, flaky pastry",
		Price:         3.00,
		Category:      "pastry",
		ImageURL:      "https://images.unsplash.com/photo-1555507036-ab794f4aaec3?w=400&h=300&fit=crop",
		IsAvailable:   true,
		StockQuantity: 50,
	},
	{
		ID:            "4",
		Name:          "Latte Art Special",
		Description:   "Beautifully crafted latte with artistic foam",
		Price:         5.00,
		Category:      "coffee",
		ImageURL:      "https://images.unsplash.com/photo-1461023058943-07fcbe16d735?w=400&h=300&fit=crop",
		IsAvailable:   true,
		StockQuantity: 100,
	},
	{
		ID:            "5",
		Name:          "Chocolate Muffin",
		Description:   "Rich chocolate muffin with chocolate chips",
		Price:         3.50,
		Category:      "pastry",
		ImageURL:      "https://images.unsplash.com/photo-1558961363-fa8fdf82db35?w=400&h=300&fit=crop",
		IsAvailable:   true,
		StockQuantity: 30,
	},
	{
		ID:            "6",
		Name:          "Iced Coffee",
		Description:   "Refreshing cold brew coffee with ice",
		Price:         4.00,
		Category:      "coffee",
		ImageURL:      "https://images.unsplash.com/photo-1461023058943-07fcbe16d735?w=400&h=300&fit=crop",
		IsAvailable:   true,
		StockQuantity: 100,
	},
}

var MockEvents = []Event{
	{
		ID:          "1",
		Title:       "Downtown Pop-Up",
		Description: "Join us at our downtown location for a special weekend coffee experience",
		EventDate:   "2024-01-14",
		StartTime:   "9:00 AM",
		EndTime:     "5:00 PM",
		Location:    "Downtown Plaza, Main Street",
		IsFeatured:  true,
		Status:      "upcoming",
	},
	{
		ID:          "2",
		Title:       "Art District Event",
		Description: "Coffee and art combine at our art district pop-up featuring local artists",
		EventDate:   "2024-01-21",
		StartTime:   "10:00 AM",
		EndTime:     "6:00 PM",
		Location:    "Art District Gallery, Creative Avenue",
		IsFeatured:  true,
		Status:      "upcoming",
	},
	{
		ID:          "3",
		Title:       "Holiday Special",
		Description: "Festive drinks and treats at our holiday-themed pop-up event",
		EventDate:   "2024-01-28",
		StartTime:   "8:00 AM",
		EndTime:     "7:00 PM",
		Location:    "Community Center, Festival Park",
		IsFeatured:  false,
		Status:      "upcoming",
	},
}

var MockTimeSlots = []string{
	"9:00 AM - 10:00 AM",
	"10:00 AM - 11:00 AM",
	"11:00 AM - 12:00 PM",
	"12:00 PM - 1:00 PM",
	"1:00 PM - 2:00 PM",
	"2:00 PM - 3:00 PM",
	"3:00 PM - 4:00 PM",
	"4:00 PM - 5:00 PM",
	"5:00 PM - 6:00 PM",
}
