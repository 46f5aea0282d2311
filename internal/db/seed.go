package db

import "workboard/internal/model"

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

// Fixed seed dataset loaded on every process start. Ids are explicit so the
// cross-table references below stay stable.
var SeedUsers = []model.User{
	{ID: 1, FirstName: "Anna", LastName: strPtr("Petrova"), Age: intPtr(32), Email: strPtr("anna.petrova@example.com"), Role: strPtr("customer"), Phone: strPtr("+7 901 555 0101")},
	{ID: 2, FirstName: "Boris", LastName: strPtr("Ivanov"), Age: intPtr(41), Email: strPtr("boris.ivanov@example.com"), Role: strPtr("executor"), Phone: strPtr("+7 901 555 0102")},
	{ID: 3, FirstName: "Clara", LastName: strPtr("Schmidt"), Age: intPtr(27), Email: strPtr("clara.schmidt@example.com"), Role: strPtr("customer"), Phone: strPtr("+49 151 555 0103")},
	{ID: 4, FirstName: "Daniil", LastName: strPtr("Orlov"), Age: intPtr(35), Email: strPtr("daniil.orlov@example.com"), Role: strPtr("executor"), Phone: strPtr("+7 901 555 0104")},
	{ID: 5, FirstName: "Elena", LastName: strPtr("Sokolova"), Age: intPtr(29), Email: strPtr("elena.sokolova@example.com"), Role: strPtr("executor"), Phone: strPtr("+7 901 555 0105")},
	{ID: 6, FirstName: "Fyodor", LastName: strPtr("Volkov"), Age: intPtr(45), Email: strPtr("fyodor.volkov@example.com"), Role: strPtr("customer"), Phone: nil},
}

var SeedOrders = []model.Order{
	{ID: 1, Name: "Assemble wardrobe", Description: strPtr("Flat-pack wardrobe, tools provided"), StartDate: "04/08/2021", EndDate: "05/08/2021", Email: strPtr("anna.petrova@example.com"), Address: strPtr("Lenina st. 12, apt. 4"), Price: intPtr(1500), CustomerID: intPtr(1), ExecutorID: intPtr(2)},
	{ID: 2, Name: "Walk the dog", Description: strPtr("Two walks a day for a week"), StartDate: "10/08/2021", EndDate: "17/08/2021", Email: strPtr("clara.schmidt@example.com"), Address: strPtr("Gagarina ave. 7"), Price: intPtr(800), CustomerID: intPtr(3), ExecutorID: intPtr(5)},
	{ID: 3, Name: "Fix kitchen tap", Description: strPtr("Dripping mixer tap, parts on site"), StartDate: "12/08/2021", EndDate: "12/08/2021", Email: strPtr("anna.petrova@example.com"), Address: strPtr("Lenina st. 12, apt. 4"), Price: intPtr(600), CustomerID: intPtr(1), ExecutorID: nil},
	{ID: 4, Name: "Move to new flat", Description: strPtr("One-room flat, third floor, no lift"), StartDate: "20/08/2021", EndDate: "21/08/2021", Email: strPtr("fyodor.volkov@example.com"), Address: strPtr("Mira st. 3"), Price: intPtr(4000), CustomerID: intPtr(6), ExecutorID: nil},
	{ID: 5, Name: "Paint the fence", Description: nil, StartDate: "01/09/2021", EndDate: "03/09/2021", Email: strPtr("clara.schmidt@example.com"), Address: strPtr("Dachnaya st. 18"), Price: intPtr(1200), CustomerID: intPtr(3), ExecutorID: intPtr(4)},
}

var SeedOffers = []model.Offer{
	{ID: 1, OrderID: intPtr(3), ExecutorID: intPtr(2)},
	{ID: 2, OrderID: intPtr(3), ExecutorID: intPtr(4)},
	{ID: 3, OrderID: intPtr(4), ExecutorID: intPtr(5)},
	{ID: 4, OrderID: intPtr(4), ExecutorID: intPtr(2)},
	{ID: 5, OrderID: intPtr(1), ExecutorID: intPtr(4)},
	{ID: 6, OrderID: intPtr(5), ExecutorID: intPtr(5)},
}
