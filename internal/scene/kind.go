package scene

// Kind enumerates the scene variants.
type Kind uint8

const (
	KindNewPet Kind = iota
	KindHome
	KindFoodSelect
	KindEat
	KindPoopClear
	KindHeal
	KindPetInfo
	KindShop
	KindInventory
	KindPlaceFurniture
	KindDeath
	KindEvolve
	KindEggHatch
	KindSuitors
	KindBreed
	KindExploreSelect
	KindExplorePost
	KindPetRecords
	KindSettings
	KindAlarmSet
	KindAlarmRing
	KindEnterDate
	KindEnterText
	KindWeekdaySelect

	kindCount
)

func (k Kind) String() string {
	switch k {
	case KindNewPet:
		return "NewPet"
	case KindHome:
		return "Home"
	case KindFoodSelect:
		return "FoodSelect"
	case KindEat:
		return "Eat"
	case KindPoopClear:
		return "PoopClear"
	case KindHeal:
		return "Heal"
	case KindPetInfo:
		return "PetInfo"
	case KindShop:
		return "Shop"
	case KindInventory:
		return "Inventory"
	case KindPlaceFurniture:
		return "PlaceFurniture"
	case KindDeath:
		return "Death"
	case KindEvolve:
		return "Evolve"
	case KindEggHatch:
		return "EggHatch"
	case KindSuitors:
		return "Suitors"
	case KindBreed:
		return "Breed"
	case KindExploreSelect:
		return "ExploreSelect"
	case KindExplorePost:
		return "ExplorePost"
	case KindPetRecords:
		return "PetRecords"
	case KindSettings:
		return "Settings"
	case KindAlarmSet:
		return "AlarmSet"
	case KindAlarmRing:
		return "AlarmRing"
	case KindEnterDate:
		return "EnterDate"
	case KindEnterText:
		return "EnterText"
	case KindWeekdaySelect:
		return "WeekdaySelect"
	default:
		return "Unknown"
	}
}

// QuitsOnIdle reports whether the game may drop back to Home when the
// player stops pressing buttons. Lifecycle events, dialogs and anything
// holding a stashed parent run to completion.
func (k Kind) QuitsOnIdle() bool {
	switch k {
	case KindFoodSelect, KindPoopClear, KindPetInfo, KindShop, KindInventory,
		KindPlaceFurniture, KindSuitors, KindExploreSelect, KindExplorePost,
		KindPetRecords, KindSettings:
		return true
	case KindNewPet, KindHome, KindEat, KindHeal, KindDeath, KindEvolve,
		KindEggHatch, KindBreed, KindAlarmSet, KindAlarmRing, KindEnterDate,
		KindEnterText, KindWeekdaySelect:
		return false
	default:
		return false
	}
}

// PersistWorthy reports whether reaching the scene means the state is
// settled enough to save.
func (k Kind) PersistWorthy() bool {
	switch k {
	case KindHome:
		return true
	default:
		return false
	}
}
