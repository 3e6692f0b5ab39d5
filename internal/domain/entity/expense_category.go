// Package entity defines the core business entities for the domain layer.
package entity

// ExpenseCategory is the fixed, compiled-in expense category enumeration.
// It backs the statistics breakdown and the display fallback chain; the
// editable registry exists alongside it.
type ExpenseCategory string

const (
	ExpenseCategoryFood          ExpenseCategory = "Food"
	ExpenseCategoryTravel        ExpenseCategory = "Travel"
	ExpenseCategoryShopping      ExpenseCategory = "Shopping"
	ExpenseCategoryBills         ExpenseCategory = "Bills"
	ExpenseCategoryEntertainment ExpenseCategory = "Entertainment"
	ExpenseCategoryHealth        ExpenseCategory = "Health"
	ExpenseCategoryOther         ExpenseCategory = "Other"
)

// AllExpenseCategories lists every enumeration member, in display order.
func AllExpenseCategories() []ExpenseCategory {
	return []ExpenseCategory{
		ExpenseCategoryFood,
		ExpenseCategoryTravel,
		ExpenseCategoryShopping,
		ExpenseCategoryBills,
		ExpenseCategoryEntertainment,
		ExpenseCategoryHealth,
		ExpenseCategoryOther,
	}
}

// ExpenseCategoryFromName resolves a category name to an enumeration member.
// The match is exact; unknown names fall back to Other.
func ExpenseCategoryFromName(name string) ExpenseCategory {
	switch ExpenseCategory(name) {
	case ExpenseCategoryFood, ExpenseCategoryTravel, ExpenseCategoryShopping,
		ExpenseCategoryBills, ExpenseCategoryEntertainment, ExpenseCategoryHealth,
		ExpenseCategoryOther:
		return ExpenseCategory(name)
	default:
		return ExpenseCategoryOther
	}
}

// Emoji returns the glyph used for list display.
func (c ExpenseCategory) Emoji() string {
	switch c {
	case ExpenseCategoryFood:
		return "🍽️"
	case ExpenseCategoryTravel:
		return "🚗"
	case ExpenseCategoryShopping:
		return "🛍️"
	case ExpenseCategoryBills:
		return "🧾"
	case ExpenseCategoryEntertainment:
		return "📺"
	case ExpenseCategoryHealth:
		return "❤️"
	default:
		return "⚪️"
	}
}

// DarkTint returns the hex tint applied to list rows in dark mode.
// Light mode rows render with the default text color instead.
func (c ExpenseCategory) DarkTint() string {
	switch c {
	case ExpenseCategoryTravel:
		return TintRed
	case ExpenseCategoryFood:
		return TintGray
	case ExpenseCategoryShopping:
		return TintLightPink
	case ExpenseCategoryBills:
		return TintWhite
	case ExpenseCategoryEntertainment:
		return TintCyan
	case ExpenseCategoryHealth:
		return TintPink
	default:
		return TintSecondary
	}
}

// Tint hex values shared by the enumeration tables and the emoji-based
// color inference.
const (
	TintRed       = "#FF453A"
	TintGray      = "#8E8E93"
	TintLightPink = "#FFB3D9"
	TintWhite     = "#FFFFFF"
	TintCyan      = "#64D2FF"
	TintPink      = "#FF375F"
	TintSecondary = "#98989D"
	TintGreen     = "#30D158"
	TintYellow    = "#FFD60A"
	TintBlue      = "#0A84FF"
	TintPurple    = "#BF5AF2"
	TintIndigo    = "#5E5CE6"
)

// TintNone means "no tint": the row renders with the default text color.
const TintNone = ""
