package calc

import "reziro/internal/domains/hotel/model"

// DefaultRoomCosts is the starter room-cost catalog offered to an account
// whose catalog is empty. The ids are not UUIDs; the storage layer maps them
// deterministically when persisting.
func DefaultRoomCosts() []model.CostCatalogItem {
	return []model.CostCatalogItem{
		{ID: "rc-001", Type: model.CostTypeRoom, Label: "Slippers", UnitCost: 2.99, DefaultQty: 2, IsActive: true},
		{ID: "rc-002", Type: model.CostTypeRoom, Label: "Grooming kit", UnitCost: 0.649, DefaultQty: 1, IsActive: true},
		{ID: "rc-003", Type: model.CostTypeRoom, Label: "Body lotion", UnitCost: 1.416, DefaultQty: 1, IsActive: true},
		{ID: "rc-004", Type: model.CostTypeRoom, Label: "Soaps", UnitCost: 0.912, DefaultQty: 2, IsActive: true},
		{ID: "rc-005", Type: model.CostTypeRoom, Label: "Coffee", UnitCost: 1.99, DefaultQty: 4, IsActive: true},
		{ID: "rc-006", Type: model.CostTypeRoom, Label: "Candies", UnitCost: 0.575, DefaultQty: 2, IsActive: true},
		{ID: "rc-007", Type: model.CostTypeRoom, Label: "Snacks", UnitCost: 0.69, DefaultQty: 2, IsActive: true},
		{ID: "rc-008", Type: model.CostTypeRoom, Label: "Coffee capsules", UnitCost: 2.87, DefaultQty: 1, IsActive: true},
		{ID: "rc-009", Type: model.CostTypeRoom, Label: "Cleaning supplies", UnitCost: 52, DefaultQty: 1, IsActive: true},
		{ID: "rc-010", Type: model.CostTypeRoom, Label: "Toilet paper", UnitCost: 6, DefaultQty: 2, IsActive: true},
		{ID: "rc-011", Type: model.CostTypeRoom, Label: "Mineral water", UnitCost: 36, DefaultQty: 1, IsActive: true},
		{ID: "rc-012", Type: model.CostTypeRoom, Label: "Ice pops", UnitCost: 7.08, DefaultQty: 1, IsActive: true},
	}
}
