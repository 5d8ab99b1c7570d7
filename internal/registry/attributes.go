package registry

// builtinAttributes is the attribute table of the Wireweave DSL, in declaration order.
var builtinAttributes = []Attribute{
	// spacing
	{Name: "p", Kind: KindNumber, Description: "Padding (all sides)", Example: "p=4"},
	{Name: "px", Kind: KindNumber, Description: "Horizontal padding", Example: "px=4"},
	{Name: "py", Kind: KindNumber, Description: "Vertical padding", Example: "py=4"},
	{Name: "pt", Kind: KindNumber, Description: "Top padding", Example: "pt=4"},
	{Name: "pr", Kind: KindNumber, Description: "Right padding", Example: "pr=4"},
	{Name: "pb", Kind: KindNumber, Description: "Bottom padding", Example: "pb=4"},
	{Name: "pl", Kind: KindNumber, Description: "Left padding", Example: "pl=4"},
	{Name: "m", Kind: KindNumber, Description: "Margin (all sides)", Example: "m=4"},
	{Name: "mx", Kind: KindString, Description: "Horizontal margin (number or \"auto\")", Example: "mx=auto"},
	{Name: "my", Kind: KindNumber, Description: "Vertical margin", Example: "my=4"},
	{Name: "mt", Kind: KindNumber, Description: "Top margin", Example: "mt=4"},
	{Name: "mr", Kind: KindNumber, Description: "Right margin", Example: "mr=4"},
	{Name: "mb", Kind: KindNumber, Description: "Bottom margin", Example: "mb=4"},
	{Name: "ml", Kind: KindNumber, Description: "Left margin", Example: "ml=4"},
	{Name: "gap", Kind: KindNumber, Description: "Gap between children", Example: "gap=4"},

	// size
	{Name: "w", Kind: KindString, Description: "Width (number, \"full\", \"auto\", \"screen\", \"fit\")", Example: "w=full"},
	{Name: "h", Kind: KindString, Description: "Height (number, \"full\", \"auto\", \"screen\")", Example: "h=full"},
	{Name: "width", Kind: KindNumber, Description: "Width in pixels (page only)", Example: "width=400"},
	{Name: "height", Kind: KindNumber, Description: "Height in pixels (page only)", Example: "height=300"},
	{Name: "minW", Kind: KindNumber, Description: "Minimum width", Example: "minW=200"},
	{Name: "maxW", Kind: KindNumber, Description: "Maximum width", Example: "maxW=600"},
	{Name: "minH", Kind: KindNumber, Description: "Minimum height", Example: "minH=100"},
	{Name: "maxH", Kind: KindNumber, Description: "Maximum height", Example: "maxH=400"},

	// flex/grid layout
	{Name: "flex", Kind: KindBoolean, Description: "Enable flexbox", Example: "flex"},
	{Name: "direction", Kind: KindEnum, Values: []string{"row", "column", "row-reverse", "column-reverse"}, Description: "Flex direction", Example: "direction=column"},
	{Name: "justify", Kind: KindEnum, Values: []string{"start", "center", "end", "between", "around", "evenly"}, Description: "Main axis alignment", Example: "justify=center"},
	{Name: "align", Kind: KindEnum, Values: []string{"start", "center", "end", "stretch", "baseline"}, Description: "Cross axis alignment", Example: "align=center"},
	{Name: "wrap", Kind: KindBoolean, Description: "Enable flex wrap", Example: "wrap"},
	{Name: "span", Kind: KindNumber, Description: "Grid column span (1-12)", Example: "span=6"},
	{Name: "sm", Kind: KindNumber, Description: "Responsive span at 576px+", Example: "sm=6"},
	{Name: "md", Kind: KindNumber, Description: "Responsive span at 768px+", Example: "md=4"},
	{Name: "lg", Kind: KindNumber, Description: "Responsive span at 992px+", Example: "lg=3"},
	{Name: "xl", Kind: KindNumber, Description: "Responsive span at 1200px+", Example: "xl=2"},
	{Name: "order", Kind: KindNumber, Description: "Flex order", Example: "order=1"},

	// position
	{Name: "x", Kind: KindNumber, Description: "Horizontal position", Example: "x=100"},
	{Name: "y", Kind: KindNumber, Description: "Vertical position", Example: "y=50"},
	{Name: "position", Kind: KindEnum, Values: []string{"left", "right", "top", "bottom", "top-left", "top-center", "top-right", "bottom-left", "bottom-center", "bottom-right"}, Description: "Position preset", Example: "position=left"},

	// visual
	{Name: "border", Kind: KindBoolean, Description: "Show border", Example: "border"},
	{Name: "rounded", Kind: KindBoolean, Description: "Apply border radius", Example: "rounded"},
	{Name: "shadow", Kind: KindEnum, Values: []string{"none", "sm", "md", "lg", "xl"}, Description: "Box shadow", Example: "shadow=md"},
	{Name: "bg", Kind: KindEnum, Values: []string{"muted", "primary", "secondary"}, Description: "Background variant", Example: "bg=muted"},

	// text
	{Name: "size", Kind: KindEnum, Values: []string{"xs", "sm", "base", "md", "lg", "xl", "2xl", "3xl"}, Description: "Size preset", Example: "size=lg"},
	{Name: "weight", Kind: KindEnum, Values: []string{"normal", "medium", "semibold", "bold"}, Description: "Font weight", Example: "weight=bold"},
	{Name: "level", Kind: KindNumber, Description: "Heading level (1-6)", Example: "level=2"},
	{Name: "muted", Kind: KindBoolean, Description: "Muted/dimmed style", Example: "muted"},
	{Name: "bold", Kind: KindBoolean, Description: "Bold text", Example: "bold"},

	// button variant
	{Name: "primary", Kind: KindBoolean, Description: "Primary style", Example: "primary"},
	{Name: "secondary", Kind: KindBoolean, Description: "Secondary style", Example: "secondary"},
	{Name: "outline", Kind: KindBoolean, Description: "Outline style", Example: "outline"},
	{Name: "ghost", Kind: KindBoolean, Description: "Ghost/transparent style", Example: "ghost"},
	{Name: "danger", Kind: KindBoolean, Description: "Danger/destructive style", Example: "danger"},

	// status variant
	{Name: "variant", Kind: KindEnum, Values: []string{"default", "primary", "secondary", "success", "warning", "danger", "info"}, Description: "Status variant", Example: "variant=success"},

	// form
	{Name: "inputType", Kind: KindEnum, Values: []string{"text", "email", "password", "number", "tel", "url", "search", "date"}, Description: "Input field type", Example: "inputType=email"},
	{Name: "placeholder", Kind: KindString, Description: "Placeholder text", Example: `placeholder="Enter text"`},
	{Name: "value", Kind: KindString, Description: "Default value", Example: `value="default"`},
	{Name: "label", Kind: KindString, Description: "Field label", Example: `label="Name"`},
	{Name: "name", Kind: KindString, Description: "Form field name", Example: `name="field"`},
	{Name: "required", Kind: KindBoolean, Description: "Required field", Example: "required"},
	{Name: "disabled", Kind: KindBoolean, Description: "Disabled state", Example: "disabled"},
	{Name: "readonly", Kind: KindBoolean, Description: "Read-only state", Example: "readonly"},
	{Name: "checked", Kind: KindBoolean, Description: "Checked state", Example: "checked"},
	{Name: "loading", Kind: KindBoolean, Description: "Loading state", Example: "loading"},
	{Name: "rows", Kind: KindNumber, Description: "Textarea rows", Example: "rows=4"},
	{Name: "min", Kind: KindNumber, Description: "Minimum value", Example: "min=0"},
	{Name: "max", Kind: KindNumber, Description: "Maximum value", Example: "max=100"},
	{Name: "step", Kind: KindNumber, Description: "Step increment", Example: "step=1"},

	// content
	{Name: "title", Kind: KindString, Description: "Title text", Example: `title="Title"`},
	{Name: "src", Kind: KindString, Description: "Source URL", Example: `src="/image.png"`},
	{Name: "alt", Kind: KindString, Description: "Alt text", Example: `alt="Image"`},
	{Name: "href", Kind: KindString, Description: "Link URL", Example: `href="/path"`},
	{Name: "icon", Kind: KindString, Description: "Icon name", Example: `icon="home"`},
	{Name: "external", Kind: KindBoolean, Description: "External link", Example: "external"},

	// state
	{Name: "active", Kind: KindNumber, Description: "Active index", Example: "active=0"},
	{Name: "expanded", Kind: KindBoolean, Description: "Expanded state", Example: "expanded"},
	{Name: "centered", Kind: KindBoolean, Description: "Center content", Example: "centered"},
	{Name: "vertical", Kind: KindBoolean, Description: "Vertical orientation", Example: "vertical"},
	{Name: "scroll", Kind: KindBoolean, Description: "Enable scrolling", Example: "scroll"},

	// feedback
	{Name: "dismissible", Kind: KindBoolean, Description: "Can be dismissed", Example: "dismissible"},
	{Name: "indeterminate", Kind: KindBoolean, Description: "Indeterminate state", Example: "indeterminate"},
	{Name: "pill", Kind: KindBoolean, Description: "Pill/rounded style", Example: "pill"},

	// data
	{Name: "striped", Kind: KindBoolean, Description: "Striped rows", Example: "striped"},
	{Name: "bordered", Kind: KindBoolean, Description: "Full borders", Example: "bordered"},
	{Name: "hover", Kind: KindBoolean, Description: "Hover effect", Example: "hover"},
	{Name: "ordered", Kind: KindBoolean, Description: "Ordered list", Example: "ordered"},
	{Name: "none", Kind: KindBoolean, Description: "No list markers", Example: "none"},

	// page/viewport
	{Name: "viewport", Kind: KindString, Description: "Viewport size (e.g., \"1440x900\")", Example: `viewport="1440x900"`},
	{Name: "device", Kind: KindString, Description: "Device preset", Example: `device="iphone14"`},

	// interactive
	{Name: "navigate", Kind: KindString, Description: "Navigation target URL or page", Example: `navigate="/dashboard"`},
	{Name: "opens", Kind: KindString, Description: "Opens a modal, drawer, or popup", Example: `opens="settings-modal"`},
	{Name: "toggles", Kind: KindString, Description: "Toggles visibility of an element", Example: `toggles="menu"`},
	{Name: "action", Kind: KindString, Description: "Action identifier for event handling", Example: `action="submit-form"`},
}
