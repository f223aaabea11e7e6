package engine

import (
	"fmt"
	"time"
)

// PurchaseItem deducts gold for a shop item. Blocked during the penalty
// window or when gold is insufficient; both are advisory, not errors.
func PurchaseItem(p Player, item ShopItem, now time.Time) (Player, []Notification) {
	if p.PenaltyActive {
		return p, []Notification{penaltyBlocked()}
	}
	if item.Cost <= 0 {
		return p, []Notification{notify(NotifyWarning, "Item cost must be positive")}
	}
	if p.Gold < item.Cost {
		return p, []Notification{notify(NotifyDanger, "Not enough gold for %s (need %d, have %d)", item.Name, item.Cost, p.Gold)}
	}

	out := p.Clone()
	out.Gold -= item.Cost
	out.addLog(now, LogShop, fmt.Sprintf("Purchased %s for %d gold", item.Name, item.Cost))
	return out, []Notification{notify(NotifySuccess, "Purchased %s (-%d gold)", item.Name, item.Cost)}
}
