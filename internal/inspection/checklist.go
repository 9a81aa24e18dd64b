package inspection

// ItemKey identifica um item do checklist de segurança.
// O conjunto é fechado: chaves fora da enumeração são rejeitadas.
type ItemKey string

const (
	ItemSafetyEquipment      ItemKey = "safety_equipment"
	ItemSiteSecured          ItemKey = "site_secured"
	ItemMaterialsStored      ItemKey = "materials_stored"
	ItemWasteManaged         ItemKey = "waste_managed"
	ItemEquipmentOperational ItemKey = "equipment_operational"
)

// ChecklistItem descreve um item na ordem exibida no formulário.
type ChecklistItem struct {
	Key         ItemKey `json:"key"`
	Label       string  `json:"label"`
	Description string  `json:"description"`
}

// Items é o checklist fixo de segurança, na ordem do formulário móvel.
var Items = []ChecklistItem{
	{ItemSafetyEquipment, "Safety Equipment Present", "Hard hats, vests, and first aid kit"},
	{ItemSiteSecured, "Site Properly Secured", "Fencing and signage in place"},
	{ItemMaterialsStored, "Materials Properly Stored", "Organized and protected storage"},
	{ItemWasteManaged, "Waste Management", "Debris removal and recycling"},
	{ItemEquipmentOperational, "Equipment Operational", "All machinery functioning properly"},
}

// ValidKey responde se a chave pertence ao checklist.
func ValidKey(key ItemKey) bool {
	for _, item := range Items {
		if item.Key == key {
			return true
		}
	}
	return false
}

// Priority classifica a gravidade de uma ocorrência.
type Priority string

const (
	PriorityLow      Priority = "Low"
	PriorityMedium   Priority = "Medium"
	PriorityHigh     Priority = "High"
	PriorityCritical Priority = "Critical"
)

// ParsePriority normaliza e valida a prioridade recebida.
func ParsePriority(value string) (Priority, bool) {
	switch value {
	case string(PriorityLow), "low":
		return PriorityLow, true
	case string(PriorityMedium), "medium":
		return PriorityMedium, true
	case string(PriorityHigh), "high":
		return PriorityHigh, true
	case string(PriorityCritical), "critical":
		return PriorityCritical, true
	default:
		return "", false
	}
}
