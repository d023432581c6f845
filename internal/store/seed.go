package store

import (
	"time"

	"github.com/archemics/salessnap/internal/models"
)

// Demo fixtures installed on first run when seeding is enabled. Ids are
// literal so the quotations can reference the seeded clients and products.

func seedClients() []models.Client {
	return []models.Client{
		{ID: "1", Name: "John", Surname: "Doe", Company: "ABC Corp", Phone: "+1234567890", Email: "john.doe@example.com", CreatedAt: time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)},
		{ID: "2", Name: "Jane", Surname: "Smith", Company: "XYZ Ltd", Phone: "+0987654321", Email: "jane.smith@example.com", CreatedAt: time.Date(2023, 2, 20, 0, 0, 0, 0, time.UTC)},
		{ID: "3", Name: "Robert", Surname: "Johnson", Company: "Johnson & Co", Phone: "+1122334455", Email: "robert@johnson.com", CreatedAt: time.Date(2023, 3, 10, 0, 0, 0, 0, time.UTC)},
	}
}

func seedProducts() []models.Product {
	return []models.Product{
		{ID: "1", Name: "Industrial Washing Machine", Description: "Heavy duty washing machine for commercial use", Price: 2499.99, Category: "Laundry", Tags: []string{"washing machine", "laundry", "cleaning", "industrial"}, Stock: 12, Status: models.StatusInStock, CreatedAt: time.Date(2023, 1, 5, 0, 0, 0, 0, time.UTC)},
		{ID: "2", Name: "Commercial Vacuum Cleaner", Description: "Powerful vacuum for large spaces", Price: 599.99, Category: "Cleaning", Tags: []string{"vacuum", "cleaning", "floor care"}, Stock: 0, Status: models.StatusOutOfStock, CreatedAt: time.Date(2023, 2, 10, 0, 0, 0, 0, time.UTC)},
		{ID: "3", Name: "Detergent (Bulk)", Description: "20L professional cleaning detergent", Price: 89.99, Category: "Cleaning Supplies", Tags: []string{"detergent", "cleaning", "supplies", "liquid"}, Stock: 45, Status: models.StatusInStock, CreatedAt: time.Date(2023, 3, 15, 0, 0, 0, 0, time.UTC)},
		{ID: "4", Name: "Dishwasher Pro", Description: "Commercial grade dishwasher", Price: 1299.99, Category: "Kitchen", Tags: []string{"dishwasher", "kitchen", "cleaning"}, Stock: 0, Status: models.StatusOnCommand, CreatedAt: time.Date(2023, 1, 25, 0, 0, 0, 0, time.UTC)},
	}
}

func seedQuotations() []models.Quotation {
	return []models.Quotation{
		{
			ID:       "1",
			ClientID: "1",
			Items: []models.QuotationItem{
				{ProductID: "1", Quantity: 2, Price: 2499.99},
				{ProductID: "3", Quantity: 5, Price: 89.99},
			},
			Total:     5449.93,
			Status:    models.QuotationSent,
			CreatedBy: "1",
			CreatedAt: time.Date(2023, 4, 10, 0, 0, 0, 0, time.UTC),
			UpdatedAt: time.Date(2023, 4, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:       "2",
			ClientID: "2",
			Items: []models.QuotationItem{
				{ProductID: "2", Quantity: 1, Price: 599.99},
				{ProductID: "3", Quantity: 2, Price: 89.99},
			},
			Total:     779.97,
			Status:    models.QuotationAccepted,
			CreatedBy: "2",
			CreatedAt: time.Date(2023, 4, 15, 0, 0, 0, 0, time.UTC),
			UpdatedAt: time.Date(2023, 4, 17, 0, 0, 0, 0, time.UTC),
		},
	}
}
