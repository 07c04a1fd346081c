package schema

// Shared sub-shapes are registered alongside the page shapes so that section
// validation and the admin editors can address them directly.

func f64(v float64) *float64 { return &v }

// ButtonStyleShape constrains the button styling sub-object used by sections.
var ButtonStyleShape = Shape{
	Name:        "buttonStyle",
	Description: "Button styling for a section's call-to-action",
	Fields: []Field{
		{Name: "variant", Type: TypeString, Required: false, Enum: []string{"primary", "secondary", "outline", "ghost"}, Description: "Visual button variant"},
		{Name: "size", Type: TypeString, Required: false, Enum: []string{"sm", "md", "lg"}, Description: "Button size"},
	},
}

// StylingShape describes the per-section styling sub-object. Shapes stay open
// here: the admin editor writes extra presentation keys we do not police.
var StylingShape = Shape{
	Name:        "styling",
	Description: "Section-level styling overrides",
	Fields: []Field{
		{Name: "backgroundColor", Type: TypeString, Required: false, MinLen: 1, Description: "Background color value"},
		{Name: "textColor", Type: TypeString, Required: false, MinLen: 1, Description: "Text color value"},
		{Name: "accentColor", Type: TypeString, Required: false, Format: FormatHexColor, Description: "Accent color (hex)"},
		{Name: "buttonStyle", Type: TypeObject, Required: false, Ref: "buttonStyle", Description: "Button styling"},
	},
}

// ImageShape describes an image descriptor.
var ImageShape = Shape{
	Name:        "image",
	Description: "Image descriptor with source and alt text",
	Fields: []Field{
		{Name: "src", Type: TypeString, Required: true, Format: FormatURL, Description: "Image URL"},
		{Name: "alt", Type: TypeString, Required: true, MinLen: 1, Description: "Alternative text"},
		{Name: "width", Type: TypeNumber, Required: false, Min: f64(1), Description: "Display width in pixels"},
		{Name: "height", Type: TypeNumber, Required: false, Min: f64(1), Description: "Display height in pixels"},
	},
}

// StatisticShape describes one statistic item in a hero section.
var StatisticShape = Shape{
	Name:        "statistic",
	Description: "Headline statistic (number plus label)",
	Fields: []Field{
		{Name: "number", Type: TypeString, Required: true, MinLen: 1, Description: "Displayed figure, e.g. \"250+\""},
		{Name: "label", Type: TypeString, Required: true, MinLen: 1, Description: "What the figure measures"},
	},
}

// FormFieldShape describes one input in the contact or application form.
// Strict: the form renderer only understands these keys, so extras are errors.
var FormFieldShape = Shape{
	Name:        "formField",
	Description: "Form input definition",
	Strict:      true,
	Fields: []Field{
		{Name: "name", Type: TypeString, Required: true, Format: FormatSlug, Description: "Input name (slug)"},
		{Name: "label", Type: TypeString, Required: true, MinLen: 1, Description: "Input label"},
		{Name: "type", Type: TypeString, Required: true, Enum: []string{"text", "email", "tel", "textarea", "select", "checkbox", "file"}, Description: "Input type"},
		{Name: "required", Type: TypeBool, Required: false, Description: "Whether the input is mandatory"},
		{Name: "placeholder", Type: TypeString, Required: false, Description: "Placeholder text"},
		{Name: "options", Type: TypeArray, Required: false, Elem: &Field{Name: "option", Type: TypeString, MinLen: 1}, Description: "Options for select inputs"},
	},
}

// BusinessHourShape describes one opening-hours row.
var BusinessHourShape = Shape{
	Name:        "businessHour",
	Description: "Opening hours for a range of days",
	Fields: []Field{
		{Name: "days", Type: TypeString, Required: true, MinLen: 1, Description: "Day range, e.g. \"Mon-Fri\""},
		{Name: "hours", Type: TypeString, Required: true, MinLen: 1, Description: "Hours, e.g. \"9:00-17:00\""},
	},
}

// heroFields is shared across page shapes; every page leads with a hero.
var heroFields = []Field{
	{Name: "title", Type: TypeString, Required: true, MinLen: 1, MaxLen: 120, Description: "Hero headline"},
	{Name: "subtitle", Type: TypeString, Required: false, MaxLen: 160, Description: "Hero subheading"},
	{Name: "description", Type: TypeString, Required: false, Description: "Hero body text"},
	{Name: "ctaText", Type: TypeString, Required: false, MaxLen: 40, Description: "Call-to-action label"},
	{Name: "ctaLink", Type: TypeString, Required: false, Format: FormatURL, Description: "Call-to-action target URL"},
	{Name: "image", Type: TypeObject, Required: false, Ref: "image", Description: "Hero image"},
	{Name: "statistics", Type: TypeArray, Required: false, Elem: &Field{Name: "statistic", Type: TypeObject, Ref: "statistic"}, Description: "Headline statistics"},
	{Name: "styling", Type: TypeObject, Required: false, Ref: "styling", Description: "Section styling"},
}

// baseFields are the five fields every page document carries.
var baseFields = []Field{
	{Name: "pageId", Type: TypeString, Required: true, Format: FormatSlug, Description: "Page identifier (slug)"},
	{Name: "title", Type: TypeString, Required: true, MinLen: 1, MaxLen: 120, Description: "Page title"},
	{Name: "description", Type: TypeString, Required: true, MinLen: 1, Description: "Page meta description"},
	{Name: "lastModified", Type: TypeString, Required: true, Format: FormatDateTime, Description: "Last modification timestamp"},
	{Name: "published", Type: TypeBool, Required: true, Description: "Whether the page is live"},
}

func pageShape(name, description string, sections ...Field) *Shape {
	fields := make([]Field, 0, len(baseFields)+len(sections))
	fields = append(fields, baseFields...)
	fields = append(fields, sections...)
	return &Shape{Name: name, Description: description, Fields: fields}
}

// HomeShape defines the home page document.
var HomeShape = pageShape("home", "Home page content",
	Field{Name: "hero", Type: TypeObject, Required: true, Children: heroFields, Description: "Hero section"},
	Field{Name: "servicesPreview", Type: TypeObject, Required: false, Description: "Services teaser section", Children: []Field{
		{Name: "title", Type: TypeString, Required: true, MinLen: 1, Description: "Section heading"},
		{Name: "subtitle", Type: TypeString, Required: false, Description: "Section subheading"},
		{Name: "items", Type: TypeArray, Required: false, Elem: &Field{Name: "item", Type: TypeObject, Children: []Field{
			{Name: "title", Type: TypeString, Required: true, MinLen: 1},
			{Name: "description", Type: TypeString, Required: false},
			{Name: "icon", Type: TypeString, Required: false},
			{Name: "link", Type: TypeString, Required: false, Format: FormatURL},
		}}, Description: "Teaser cards"},
		{Name: "styling", Type: TypeObject, Required: false, Ref: "styling"},
	}},
	Field{Name: "testimonials", Type: TypeObject, Required: false, Description: "Customer testimonials section", Children: []Field{
		{Name: "title", Type: TypeString, Required: true, MinLen: 1},
		{Name: "items", Type: TypeArray, Required: false, Elem: &Field{Name: "item", Type: TypeObject, Children: []Field{
			{Name: "quote", Type: TypeString, Required: true, MinLen: 1},
			{Name: "author", Type: TypeString, Required: true, MinLen: 1},
			{Name: "company", Type: TypeString, Required: false},
		}}},
		{Name: "styling", Type: TypeObject, Required: false, Ref: "styling"},
	}},
)

// AboutShape defines the about page document.
var AboutShape = pageShape("about", "About page content",
	Field{Name: "hero", Type: TypeObject, Required: true, Children: heroFields, Description: "Hero section"},
	Field{Name: "story", Type: TypeObject, Required: false, Description: "Company story section", Children: []Field{
		{Name: "title", Type: TypeString, Required: true, MinLen: 1},
		{Name: "content", Type: TypeString, Required: true, MinLen: 1},
		{Name: "image", Type: TypeObject, Required: false, Ref: "image"},
		{Name: "styling", Type: TypeObject, Required: false, Ref: "styling"},
	}},
	Field{Name: "values", Type: TypeArray, Required: false, Description: "Company values", Elem: &Field{Name: "value", Type: TypeObject, Children: []Field{
		{Name: "title", Type: TypeString, Required: true, MinLen: 1},
		{Name: "description", Type: TypeString, Required: false},
		{Name: "icon", Type: TypeString, Required: false},
	}}},
	Field{Name: "team", Type: TypeArray, Required: false, Description: "Team members", Elem: &Field{Name: "member", Type: TypeObject, Children: []Field{
		{Name: "name", Type: TypeString, Required: true, MinLen: 1},
		{Name: "role", Type: TypeString, Required: true, MinLen: 1},
		{Name: "photo", Type: TypeObject, Required: false, Ref: "image"},
		{Name: "email", Type: TypeString, Required: false, Format: FormatEmail},
	}}},
)

// ServicesShape defines the services page document.
var ServicesShape = pageShape("services", "Services page content",
	Field{Name: "hero", Type: TypeObject, Required: true, Children: heroFields, Description: "Hero section"},
	Field{Name: "services", Type: TypeArray, Required: true, MinLen: 1, Description: "Service offerings", Elem: &Field{Name: "service", Type: TypeObject, Children: []Field{
		{Name: "title", Type: TypeString, Required: true, MinLen: 1, MaxLen: 120},
		{Name: "description", Type: TypeString, Required: true, MinLen: 1},
		{Name: "icon", Type: TypeString, Required: false},
		{Name: "link", Type: TypeString, Required: false, Format: FormatURL},
		{Name: "image", Type: TypeObject, Required: false, Ref: "image"},
		{Name: "styling", Type: TypeObject, Required: false, Ref: "styling"},
	}}},
	Field{Name: "cta", Type: TypeObject, Required: false, Description: "Closing call-to-action", Children: []Field{
		{Name: "title", Type: TypeString, Required: true, MinLen: 1},
		{Name: "subtitle", Type: TypeString, Required: false},
		{Name: "ctaText", Type: TypeString, Required: false, MaxLen: 40},
		{Name: "ctaLink", Type: TypeString, Required: false, Format: FormatURL},
		{Name: "styling", Type: TypeObject, Required: false, Ref: "styling"},
	}},
)

// ContactShape defines the contact page document.
var ContactShape = pageShape("contact", "Contact page content",
	Field{Name: "hero", Type: TypeObject, Required: true, Children: heroFields, Description: "Hero section"},
	Field{Name: "contactInfo", Type: TypeObject, Required: true, Description: "Contact details", Children: []Field{
		{Name: "email", Type: TypeString, Required: true, Format: FormatEmail},
		{Name: "phone", Type: TypeString, Required: false, MinLen: 1},
		{Name: "address", Type: TypeString, Required: false},
		{Name: "businessHours", Type: TypeArray, Required: false, Elem: &Field{Name: "businessHour", Type: TypeObject, Ref: "businessHour"}},
	}},
	Field{Name: "form", Type: TypeObject, Required: true, Description: "Contact form definition", Children: []Field{
		{Name: "title", Type: TypeString, Required: false},
		{Name: "submitLabel", Type: TypeString, Required: false, MaxLen: 40},
		{Name: "fields", Type: TypeArray, Required: true, MinLen: 1, Elem: &Field{Name: "field", Type: TypeObject, Ref: "formField"}},
	}},
)

// JobsShape defines the jobs page document.
var JobsShape = pageShape("jobs", "Jobs page content",
	Field{Name: "hero", Type: TypeObject, Required: true, Children: heroFields, Description: "Hero section"},
	Field{Name: "positions", Type: TypeArray, Required: false, Description: "Open positions", Elem: &Field{Name: "position", Type: TypeObject, Children: []Field{
		{Name: "title", Type: TypeString, Required: true, MinLen: 1, MaxLen: 120},
		{Name: "department", Type: TypeString, Required: false},
		{Name: "location", Type: TypeString, Required: false},
		{Name: "type", Type: TypeString, Required: true, Enum: []string{"full-time", "part-time", "contract", "internship"}},
		{Name: "description", Type: TypeString, Required: true, MinLen: 1},
		{Name: "applyLink", Type: TypeString, Required: false, Format: FormatURL},
	}}},
	Field{Name: "benefits", Type: TypeArray, Required: false, Description: "Employee benefits", Elem: &Field{Name: "benefit", Type: TypeObject, Children: []Field{
		{Name: "title", Type: TypeString, Required: true, MinLen: 1},
		{Name: "description", Type: TypeString, Required: false},
		{Name: "icon", Type: TypeString, Required: false},
	}}},
	Field{Name: "applicationForm", Type: TypeObject, Required: false, Description: "Job application form definition", Children: []Field{
		{Name: "title", Type: TypeString, Required: false},
		{Name: "fields", Type: TypeArray, Required: true, MinLen: 1, Elem: &Field{Name: "field", Type: TypeObject, Ref: "formField"}},
	}},
)

// registry maps page types and sub-shape keys to their shapes.
var registry = map[string]*Shape{
	"home":     HomeShape,
	"about":    AboutShape,
	"services": ServicesShape,
	"contact":  ContactShape,
	"jobs":     JobsShape,

	"buttonStyle":  &ButtonStyleShape,
	"styling":      &StylingShape,
	"image":        &ImageShape,
	"statistic":    &StatisticShape,
	"formField":    &FormFieldShape,
	"businessHour": &BusinessHourShape,
}

// pageTypes marks which registry keys are full page shapes.
var pageTypes = map[string]bool{
	"home":     true,
	"about":    true,
	"services": true,
	"contact":  true,
	"jobs":     true,
}
