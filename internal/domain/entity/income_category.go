// Package entity defines the core business entities for the domain layer.
package entity

// IncomeCategory is the fixed income category enumeration. Unlike expense
// categories there is no registry behind it; the enumeration is the whole
// category set for income records.
type IncomeCategory string

const (
	IncomeCategorySalary     IncomeCategory = "Salary"
	IncomeCategoryBonus      IncomeCategory = "Bonus"
	IncomeCategoryInvestment IncomeCategory = "Investment"
	IncomeCategoryFreelance  IncomeCategory = "Freelance"
	IncomeCategoryGift       IncomeCategory = "Gift"
	IncomeCategoryBusiness   IncomeCategory = "Business"
	IncomeCategoryOther      IncomeCategory = "Other"
)

// AllIncomeCategories lists every enumeration member, in display order.
func AllIncomeCategories() []IncomeCategory {
	return []IncomeCategory{
		IncomeCategorySalary,
		IncomeCategoryBonus,
		IncomeCategoryInvestment,
		IncomeCategoryFreelance,
		IncomeCategoryGift,
		IncomeCategoryBusiness,
		IncomeCategoryOther,
	}
}

// IncomeCategoryFromName resolves a category name to an enumeration member.
// The match is exact; unknown names fall back to Other.
func IncomeCategoryFromName(name string) IncomeCategory {
	switch IncomeCategory(name) {
	case IncomeCategorySalary, IncomeCategoryBonus, IncomeCategoryInvestment,
		IncomeCategoryFreelance, IncomeCategoryGift, IncomeCategoryBusiness,
		IncomeCategoryOther:
		return IncomeCategory(name)
	default:
		return IncomeCategoryOther
	}
}

// Emoji returns the glyph used for list display.
func (c IncomeCategory) Emoji() string {
	switch c {
	case IncomeCategorySalary:
		return "💰"
	case IncomeCategoryBonus:
		return "⭐"
	case IncomeCategoryInvestment:
		return "📈"
	case IncomeCategoryFreelance:
		return "💼"
	case IncomeCategoryGift:
		return "🎁"
	case IncomeCategoryBusiness:
		return "🏢"
	default:
		return "⚪️"
	}
}

// DarkTint returns the hex tint applied to list rows in dark mode.
func (c IncomeCategory) DarkTint() string {
	switch c {
	case IncomeCategorySalary:
		return TintGreen
	case IncomeCategoryBonus:
		return TintYellow
	case IncomeCategoryInvestment:
		return TintBlue
	case IncomeCategoryFreelance:
		return TintPurple
	case IncomeCategoryGift:
		return TintPink
	case IncomeCategoryBusiness:
		return TintIndigo
	default:
		return TintSecondary
	}
}
