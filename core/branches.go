package core

// Branch is one regional office of the company.
type Branch struct {
	City          string
	Name          string
	Tagline       string
	Title         string
	Address       string
	Phone         string
	Email         string
	Description   string
	Image         string
	Manager       string
	EmployeeCount string
	Services      string
}

// Registry is a read-only, ordered set of branches keyed by city.
type Registry struct {
	order  []string
	byCity map[string]Branch
}

// NewRegistry keeps the given declaration order. A repeated city keeps the
// first entry.
func NewRegistry(branches ...Branch) *Registry {
	r := &Registry{byCity: make(map[string]Branch, len(branches))}
	for _, b := range branches {
		if _, dup := r.byCity[b.City]; dup {
			continue
		}
		r.order = append(r.order, b.City)
		r.byCity[b.City] = b
	}
	return r
}

// Lookup matches the city exactly and case-sensitively.
func (r *Registry) Lookup(city string) (Branch, error) {
	b, ok := r.byCity[city]
	if !ok {
		return Branch{}, &BranchNotFoundError{City: city}
	}
	return b, nil
}

func (r *Registry) All() []Branch {
	out := make([]Branch, 0, len(r.order))
	for _, city := range r.order {
		out = append(out, r.byCity[city])
	}
	return out
}

func (r *Registry) Cities() []string {
	return append([]string(nil), r.order...)
}

func (r *Registry) Len() int {
	return len(r.order)
}

// Links returns one link per branch, pointing at its detail page.
func (r *Registry) Links() []Link {
	links := make([]Link, 0, len(r.order))
	for _, city := range r.order {
		links = append(links, Link{Label: r.byCity[city].Name, Path: "/branches/" + city})
	}
	return links
}

var defaultRegistry = NewRegistry(
	Branch{
		City:          "London",
		Name:          "Лондон",
		Tagline:       "Наш первый международный филиал",
		Title:         "Лондонский филиал",
		Address:       "123 Business Street, London, UK",
		Phone:         "+44 20 7946 0958",
		Email:         "london@company.com",
		Description:   "Наш первый международный филиал, открытый в 2015 году. Лондонский офис специализируется на финансовых технологиях и обслуживании клиентов из Европы и Ближнего Востока.",
		Image:         "https://images.unsplash.com/photo-1513635269975-59663e0ac1ad?ixlib=rb-4.0.3&auto=format&fit=crop&w=1350&q=80",
		Manager:       "Джон Смит",
		EmployeeCount: "45 сотрудников",
		Services:      "Финансовые технологии, Консалтинг, Поддержка клиентов",
	},
	Branch{
		City:          "Paris",
		Name:          "Париж",
		Tagline:       "Европейский центр инноваций",
		Title:         "Парижский филиал",
		Address:       "456 Rue de Commerce, Paris, France",
		Phone:         "+33 1 23 45 67 89",
		Email:         "paris@company.com",
		Description:   "Европейский центр инноваций, открыт в 2018 году. Парижская команда сосредоточена на разработке новых продуктов и искусственном интеллекте.",
		Image:         "https://images.unsplash.com/photo-1431274172761-fca41d930114?ixlib=rb-4.0.3&auto=format&fit=crop&w=1350&q=80",
		Manager:       "Мари Дюпон",
		EmployeeCount: "32 сотрудника",
		Services:      "Исследования и разработки, Искусственный интеллект, Продуктовая разработка",
	},
	Branch{
		City:          "Berlin",
		Name:          "Берлин",
		Tagline:       "Современный технологический хаб",
		Title:         "Берлинский филиал",
		Address:       "789 Geschäftsstraße, Berlin, Germany",
		Phone:         "+49 30 901820",
		Email:         "berlin@company.com",
		Description:   "Современный технологический хаб, открыт в 2020 году. Берлинский офис является центром разработки облачных решений и кибербезопасности.",
		Image:         "https://images.unsplash.com/photo-1587330979470-3595ac045ab0?ixlib=rb-4.0.3&auto=format&fit=crop&w=1350&q=80",
		Manager:       "Томас Мюллер",
		EmployeeCount: "28 сотрудников",
		Services:      "Облачные решения, Кибербезопасность, Техническая поддержка",
	},
)

// DefaultRegistry returns the company's branch offices.
func DefaultRegistry() *Registry {
	return defaultRegistry
}
