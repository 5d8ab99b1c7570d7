package registry

// commonAttributes are accepted by every component.
var commonAttributes = []string{
	// spacing
	"p", "px", "py", "pt", "pr", "pb", "pl",
	"m", "mx", "my", "mt", "mr", "mb", "ml",
	"gap",
	// size
	"w", "h", "minW", "maxW", "minH", "maxH",
	// flex
	"flex", "direction", "justify", "align", "wrap",
	// grid
	"span",
	// position
	"x", "y",
}

func withCommon(extra ...string) []string {
	out := make([]string, 0, len(commonAttributes)+len(extra))
	out = append(out, commonAttributes...)
	return append(out, extra...)
}

// CommonAttributes returns a copy of the attribute names shared by all components.
func CommonAttributes() []string {
	return withCommon()
}

// builtinComponents is the component table of the Wireweave DSL, in declaration order.
var builtinComponents = []Component{
	{
		Name:          "page",
		NodeType:      "Page",
		Category:      CategoryLayout,
		Attributes:    withCommon("title", "width", "height", "viewport", "device", "centered"),
		HasChildren:   true,
		Description:   "Root container for a wireframe page",
		Example:       `page "Dashboard" centered { ... }`,
		ValidChildren: []string{"header", "main", "footer", "sidebar", "section", "nav", "row", "col", "card"},
		ValidParents:  []string{},
	},
	{
		Name:         "header",
		NodeType:     "Header",
		Category:     CategoryLayout,
		Attributes:   withCommon("border"),
		HasChildren:  true,
		Description:  "Page header section",
		Example:      `header h=56 border { ... }`,
		ValidParents: []string{"page"},
	},
	{
		Name:         "main",
		NodeType:     "Main",
		Category:     CategoryLayout,
		Attributes:   withCommon("scroll"),
		HasChildren:  true,
		Description:  "Main content section",
		Example:      `main p=6 scroll { ... }`,
		ValidParents: []string{"page"},
	},
	{
		Name:         "footer",
		NodeType:     "Footer",
		Category:     CategoryLayout,
		Attributes:   withCommon("border"),
		HasChildren:  true,
		Description:  "Page footer section",
		Example:      `footer h=48 border { ... }`,
		ValidParents: []string{"page"},
	},
	{
		Name:         "sidebar",
		NodeType:     "Sidebar",
		Category:     CategoryLayout,
		Attributes:   withCommon("position", "border", "bg"),
		HasChildren:  true,
		Description:  "Side navigation or content area",
		Example:      `sidebar w=240 border { ... }`,
		ValidParents: []string{"page"},
	},
	{
		Name:        "section",
		NodeType:    "Section",
		Category:    CategoryLayout,
		Attributes:  withCommon("title", "expanded"),
		HasChildren: true,
		Description: "Grouped content section",
		Example:     `section "Settings" expanded { ... }`,
	},
	{
		Name:        "row",
		NodeType:    "Row",
		Category:    CategoryGrid,
		Attributes:  withCommon("border", "bg"),
		HasChildren: true,
		Description: "Horizontal flex container",
		Example:     `row flex gap=4 justify=between { ... }`,
	},
	{
		Name:        "col",
		NodeType:    "Col",
		Category:    CategoryGrid,
		Attributes:  withCommon("sm", "md", "lg", "xl", "order", "border", "bg", "scroll"),
		HasChildren: true,
		Description: "Vertical flex container or grid column",
		Example:     `col span=6 md=4 { ... }`,
	},
	{
		Name:        "card",
		NodeType:    "Card",
		Category:    CategoryContainer,
		Attributes:  withCommon("title", "shadow", "border", "rounded"),
		HasChildren: true,
		Description: "Card container with optional title",
		Example:     `card "Settings" p=4 shadow=md { ... }`,
	},
	{
		Name:        "modal",
		NodeType:    "Modal",
		Category:    CategoryContainer,
		Attributes:  withCommon("title"),
		HasChildren: true,
		Description: "Modal dialog overlay",
		Example:     `modal "Confirm" w=400 { ... }`,
	},
	{
		Name:        "drawer",
		NodeType:    "Drawer",
		Category:    CategoryContainer,
		Attributes:  withCommon("title", "position"),
		HasChildren: true,
		Description: "Slide-in drawer panel",
		Example:     `drawer "Menu" position=left { ... }`,
	},
	{
		Name:        "accordion",
		NodeType:    "Accordion",
		Category:    CategoryContainer,
		Attributes:  withCommon("title"),
		HasChildren: true,
		Description: "Collapsible sections container",
		Example:     `accordion { section "FAQ 1" { ... } }`,
	},
	{
		Name:        "text",
		NodeType:    "Text",
		Category:    CategoryText,
		Attributes:  withCommon("size", "weight", "muted", "bold"),
		HasChildren: false,
		Description: "Text content",
		Example:     `text "Hello World" size=lg weight=bold`,
	},
	{
		Name:        "title",
		NodeType:    "Title",
		Category:    CategoryText,
		Attributes:  withCommon("level", "size"),
		HasChildren: false,
		Description: "Heading element (h1-h6)",
		Example:     `title "Welcome" level=2`,
	},
	{
		Name:        "link",
		NodeType:    "Link",
		Category:    CategoryText,
		Attributes:  withCommon("href", "external"),
		HasChildren: false,
		Description: "Hyperlink text",
		Example:     `link "Learn more" href="/docs" external`,
	},
	{
		Name:        "input",
		NodeType:    "Input",
		Category:    CategoryInput,
		Attributes:  withCommon("label", "inputType", "placeholder", "value", "disabled", "required", "readonly", "icon", "size", "rounded"),
		HasChildren: false,
		Description: "Text input field",
		Example:     `input "Email" inputType=email placeholder="user@example.com" required`,
	},
	{
		Name:        "textarea",
		NodeType:    "Textarea",
		Category:    CategoryInput,
		Attributes:  withCommon("label", "placeholder", "value", "rows", "disabled", "required"),
		HasChildren: false,
		Description: "Multi-line text input",
		Example:     `textarea "Description" rows=4 placeholder="Enter description..."`,
	},
	{
		Name:        "select",
		NodeType:    "Select",
		Category:    CategoryInput,
		Attributes:  withCommon("label", "placeholder", "value", "disabled", "required"),
		HasChildren: false,
		Description: "Dropdown select",
		Example:     `select "Country" ["USA", "Canada", "UK"] placeholder="Select..."`,
	},
	{
		Name:        "checkbox",
		NodeType:    "Checkbox",
		Category:    CategoryInput,
		Attributes:  withCommon("label", "checked", "disabled"),
		HasChildren: false,
		Description: "Checkbox input",
		Example:     `checkbox "I agree to terms" checked`,
	},
	{
		Name:        "radio",
		NodeType:    "Radio",
		Category:    CategoryInput,
		Attributes:  withCommon("label", "name", "checked", "disabled"),
		HasChildren: false,
		Description: "Radio button input",
		Example:     `radio "Option A" name="choice" checked`,
	},
	{
		Name:        "switch",
		NodeType:    "Switch",
		Category:    CategoryInput,
		Attributes:  withCommon("label", "checked", "disabled"),
		HasChildren: false,
		Description: "Toggle switch",
		Example:     `switch "Dark mode" checked`,
	},
	{
		Name:        "slider",
		NodeType:    "Slider",
		Category:    CategoryInput,
		Attributes:  withCommon("label", "min", "max", "value", "step", "disabled"),
		HasChildren: false,
		Description: "Range slider",
		Example:     `slider "Volume" min=0 max=100 value=50`,
	},
	{
		Name:        "button",
		NodeType:    "Button",
		Category:    CategoryInput,
		Attributes:  withCommon("primary", "secondary", "outline", "ghost", "danger", "size", "icon", "disabled", "loading"),
		HasChildren: false,
		Description: "Clickable button",
		Example:     `button "Submit" primary icon=send`,
	},
	{
		Name:        "image",
		NodeType:    "Image",
		Category:    CategoryDisplay,
		Attributes:  withCommon("src", "alt"),
		HasChildren: false,
		Description: "Image placeholder",
		Example:     `image w=200 h=150`,
	},
	{
		Name:        "placeholder",
		NodeType:    "Placeholder",
		Category:    CategoryDisplay,
		Attributes:  withCommon("label"),
		HasChildren: true,
		Description: "Generic placeholder",
		Example:     `placeholder "Banner Image" w=full h=200 { ... }`,
	},
	{
		Name:        "avatar",
		NodeType:    "Avatar",
		Category:    CategoryDisplay,
		Attributes:  withCommon("name", "src", "size"),
		HasChildren: false,
		Description: "User avatar",
		Example:     `avatar "John Doe" size=lg`,
	},
	{
		Name:        "badge",
		NodeType:    "Badge",
		Category:    CategoryDisplay,
		Attributes:  withCommon("variant", "pill", "icon", "size"),
		HasChildren: false,
		Description: "Status badge",
		Example:     `badge "New" variant=success pill`,
	},
	{
		Name:        "icon",
		NodeType:    "Icon",
		Category:    CategoryDisplay,
		Attributes:  withCommon("size", "muted"),
		HasChildren: false,
		Description: "Lucide icon",
		Example:     `icon "settings" size=lg`,
	},
	{
		Name:        "table",
		NodeType:    "Table",
		Category:    CategoryData,
		Attributes:  withCommon("striped", "bordered", "hover"),
		HasChildren: false,
		Description: "Data table",
		Example:     `table striped bordered { columns ["Name", "Email"] row ["John", "john@example.com"] }`,
	},
	{
		Name:        "list",
		NodeType:    "List",
		Category:    CategoryData,
		Attributes:  withCommon("ordered", "none"),
		HasChildren: false,
		Description: "List of items",
		Example:     `list ordered ["First", "Second", "Third"]`,
	},
	{
		Name:        "alert",
		NodeType:    "Alert",
		Category:    CategoryFeedback,
		Attributes:  withCommon("variant", "dismissible", "icon"),
		HasChildren: false,
		Description: "Alert message",
		Example:     `alert "Changes saved!" variant=success`,
	},
	{
		Name:        "toast",
		NodeType:    "Toast",
		Category:    CategoryFeedback,
		Attributes:  withCommon("position", "variant"),
		HasChildren: false,
		Description: "Toast notification",
		Example:     `toast "Item deleted" position=bottom-right variant=danger`,
	},
	{
		Name:        "progress",
		NodeType:    "Progress",
		Category:    CategoryFeedback,
		Attributes:  withCommon("value", "max", "label", "indeterminate"),
		HasChildren: false,
		Description: "Progress bar",
		Example:     `progress value=75 label="Uploading..."`,
	},
	{
		Name:        "spinner",
		NodeType:    "Spinner",
		Category:    CategoryFeedback,
		Attributes:  withCommon("label", "size"),
		HasChildren: false,
		Description: "Loading spinner",
		Example:     `spinner size=lg`,
	},
	{
		Name:        "tooltip",
		NodeType:    "Tooltip",
		Category:    CategoryOverlay,
		Attributes:  withCommon("position"),
		HasChildren: false,
		Description: "Tooltip on hover",
		Example:     `tooltip "More info" position=top { icon "help-circle" }`,
	},
	{
		Name:        "popover",
		NodeType:    "Popover",
		Category:    CategoryOverlay,
		Attributes:  withCommon("title"),
		HasChildren: true,
		Description: "Popover panel",
		Example:     `popover "Details" { ... }`,
	},
	{
		Name:        "dropdown",
		NodeType:    "Dropdown",
		Category:    CategoryOverlay,
		Attributes:  withCommon(),
		HasChildren: false,
		Description: "Dropdown menu",
		Example:     `dropdown { item "Edit" icon=edit item "Delete" icon=trash danger }`,
	},
	{
		Name:        "nav",
		NodeType:    "Nav",
		Category:    CategoryNavigation,
		Attributes:  withCommon("vertical"),
		HasChildren: false,
		Description: "Navigation menu",
		Example:     `nav [{ label="Home" icon=home active }, { label="Settings" icon=settings }] vertical`,
	},
	{
		Name:        "tabs",
		NodeType:    "Tabs",
		Category:    CategoryNavigation,
		Attributes:  withCommon("active"),
		HasChildren: true,
		Description: "Tab navigation",
		Example:     `tabs { tab "General" active { ... } tab "Advanced" { ... } }`,
	},
	{
		Name:        "breadcrumb",
		NodeType:    "Breadcrumb",
		Category:    CategoryNavigation,
		Attributes:  withCommon(),
		HasChildren: false,
		Description: "Breadcrumb navigation",
		Example:     `breadcrumb [{ label="Home" href="/" }, { label="Products" }, { label="Details" }]`,
	},
	{
		Name:        "divider",
		NodeType:    "Divider",
		Category:    CategoryLayout,
		Attributes:  withCommon("vertical"),
		HasChildren: false,
		Description: "Horizontal separator",
		Example:     `divider my=4`,
	},
}
