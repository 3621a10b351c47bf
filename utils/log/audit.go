package log

import (
	"encoding/json"

	"gorm.io/gorm"

	"bakepos-api/models"
)

func toJSONString(v interface{}) *string {
	if v == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	s := string(b)
	return &s
}

// CreateProductAuditLog writes an audit row inside the caller's transaction so
// the audit trail commits or rolls back together with the mutation.
func CreateProductAuditLog(
	db *gorm.DB,
	action string,
	entityID uint,
	oldProduct, newProduct *models.Product,
	userID *uint,
	ipAddress string,
	description string,
) error {
	auditLog := models.AuditLog{
		EntityType:  "product",
		EntityID:    entityID,
		Action:      action,
		UserID:      userID,
		OldValue:    toJSONString(oldProduct),
		NewValue:    toJSONString(newProduct),
		Changes:     calculateProductChanges(action, oldProduct, newProduct),
		IPAddress:   &ipAddress,
		Description: description,
	}

	return db.Create(&auditLog).Error
}

func CreateBillAuditLog(
	db *gorm.DB,
	action string,
	entityID uint,
	oldBill, newBill *models.Bill,
	userID *uint,
	ipAddress string,
	description string,
) error {
	auditLog := models.AuditLog{
		EntityType:  "bill",
		EntityID:    entityID,
		Action:      action,
		UserID:      userID,
		OldValue:    toJSONString(oldBill),
		NewValue:    toJSONString(newBill),
		IPAddress:   &ipAddress,
		Description: description,
	}

	return db.Create(&auditLog).Error
}

func calculateProductChanges(action string, oldProduct, newProduct *models.Product) *string {
	if action != "update" || oldProduct == nil || newProduct == nil {
		return nil
	}

	changes := make(map[string]interface{})

	if oldProduct.Name != newProduct.Name {
		changes["name"] = map[string]string{
			"old": oldProduct.Name,
			"new": newProduct.Name,
		}
	}

	if oldProduct.Stock != newProduct.Stock {
		changes["stock"] = map[string]int{
			"old": oldProduct.Stock,
			"new": newProduct.Stock,
		}
	}

	if !oldProduct.Price.Equal(newProduct.Price) {
		changes["price"] = map[string]string{
			"old": oldProduct.Price.String(),
			"new": newProduct.Price.String(),
		}
	}

	if oldProduct.Status != newProduct.Status {
		changes["status"] = map[string]string{
			"old": oldProduct.Status,
			"new": newProduct.Status,
		}
	}

	if len(changes) == 0 {
		return nil
	}

	return toJSONString(changes)
}
