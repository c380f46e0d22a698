package catalog

// Category groups requirement items on the results page.
type Category string

const (
	CategoryDocuments Category = "documents"
	CategoryHealth    Category = "health"
	CategoryCustoms   Category = "customs"
	CategoryCultural  Category = "cultural"
)

var categories = []Category{CategoryDocuments, CategoryHealth, CategoryCustoms, CategoryCultural}

// Categories returns the categories in rendering order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// Title is the heading shown above the category's group.
func (c Category) Title() string {
	switch c {
	case CategoryDocuments:
		return "Required Documents"
	case CategoryHealth:
		return "Health Requirements"
	case CategoryCustoms:
		return "Customs & Restrictions"
	case CategoryCultural:
		return "Cultural Do's & Don'ts"
	default:
		return string(c)
	}
}

// Status classifies how strongly a requirement applies.
type Status string

const (
	StatusRequired    Status = "required"
	StatusRecommended Status = "recommended"
	StatusImportant   Status = "important"
	StatusWarning     Status = "warning"
	StatusInfo        Status = "info"
)

// Statuses lists every status value.
func Statuses() []Status {
	return []Status{StatusRequired, StatusRecommended, StatusImportant, StatusWarning, StatusInfo}
}

type RequirementItem struct {
	Category    Category
	Type        string
	Requirement string
	Status      Status
}

// The sample fixture is the same for every country pair.
var requirements = map[Category][]RequirementItem{
	CategoryDocuments: {
		{CategoryDocuments, "Passport", "Valid for at least 6 months", StatusRequired},
		{CategoryDocuments, "Visa", "Tourist visa required", StatusRequired},
		{CategoryDocuments, "Travel Insurance", "Medical coverage minimum €30,000", StatusRecommended},
	},
	CategoryHealth: {
		{CategoryHealth, "Vaccinations", "Yellow fever vaccination required", StatusRequired},
		{CategoryHealth, "COVID-19", "Vaccination certificate or negative test", StatusRequired},
		{CategoryHealth, "Health Insurance", "Valid health insurance coverage", StatusRecommended},
	},
	CategoryCustoms: {
		{CategoryCustoms, "Currency", "Declare amounts over €10,000", StatusInfo},
		{CategoryCustoms, "Alcohol", "Maximum 1L spirits, 2L wine", StatusInfo},
		{CategoryCustoms, "Tobacco", "Maximum 200 cigarettes", StatusInfo},
	},
	CategoryCultural: {
		{CategoryCultural, "Dress Code", "Conservative clothing in religious sites", StatusImportant},
		{CategoryCultural, "Photography", "No photos of government buildings", StatusWarning},
		{CategoryCultural, "Tipping", "10-15% in restaurants is customary", StatusInfo},
	},
}

// Requirements returns a copy of the fixture items for category, in
// declaration order. Unknown categories yield nil.
func Requirements(c Category) []RequirementItem {
	items := requirements[c]
	if items == nil {
		return nil
	}
	out := make([]RequirementItem, len(items))
	copy(out, items)
	return out
}
