package scm

// Address represents an address object in the configuration hierarchy.
// Exactly one of the value fields (IPNetmask, IPRange, IPWildcard, FQDN)
// and exactly one container (Folder, Snippet, Device) is set.
type Address struct {
	Resource `yaml:",inline"`

	Name        string   `json:"name"                  yaml:"name"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Tags        []string `json:"tag,omitempty"         yaml:"tag,omitempty"`

	IPNetmask  string `json:"ip_netmask,omitempty"  yaml:"ip_netmask,omitempty"`
	IPRange    string `json:"ip_range,omitempty"    yaml:"ip_range,omitempty"`
	IPWildcard string `json:"ip_wildcard,omitempty" yaml:"ip_wildcard,omitempty"`
	FQDN       string `json:"fqdn,omitempty"        yaml:"fqdn,omitempty"`

	Folder  string `json:"folder,omitempty"  yaml:"folder,omitempty"`
	Snippet string `json:"snippet,omitempty" yaml:"snippet,omitempty"`
	Device  string `json:"device,omitempty"  yaml:"device,omitempty"`
}

// AddressCreateRequest represents a request to create an address.
type AddressCreateRequest struct {
	Name        string   `json:"name"                  yaml:"name"                  validate:"required,max=63"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty" validate:"omitempty,max=1023"`
	Tags        []string `json:"tag,omitempty"         yaml:"tag,omitempty"         validate:"omitempty,dive,max=127"`

	IPNetmask  string `json:"ip_netmask,omitempty"  yaml:"ip_netmask,omitempty"`
	IPRange    string `json:"ip_range,omitempty"    yaml:"ip_range,omitempty"`
	IPWildcard string `json:"ip_wildcard,omitempty" yaml:"ip_wildcard,omitempty"`
	FQDN       string `json:"fqdn,omitempty"        yaml:"fqdn,omitempty"        validate:"omitempty,max=255"`

	Folder  string `json:"folder,omitempty"  yaml:"folder,omitempty"  validate:"omitempty,max=64"`
	Snippet string `json:"snippet,omitempty" yaml:"snippet,omitempty" validate:"omitempty,max=64"`
	Device  string `json:"device,omitempty"  yaml:"device,omitempty"  validate:"omitempty,max=64"`
}

// Validate checks the request against the create-model contract.
func (r *AddressCreateRequest) Validate() error {
	if err := validateStruct(r); err != nil {
		return err
	}

	if err := validateContainer(r.Folder, r.Snippet, r.Device); err != nil {
		return err
	}

	return validateExactlyOne("address value", map[string]string{
		"ip_netmask":  r.IPNetmask,
		"ip_range":    r.IPRange,
		"ip_wildcard": r.IPWildcard,
		"fqdn":        r.FQDN,
	})
}

// AddressUpdateRequest represents a full-replace update of an address.
type AddressUpdateRequest struct {
	ID          string   `json:"id"                    yaml:"id"                    validate:"required"`
	Name        string   `json:"name"                  yaml:"name"                  validate:"required,max=63"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty" validate:"omitempty,max=1023"`
	Tags        []string `json:"tag,omitempty"         yaml:"tag,omitempty"         validate:"omitempty,dive,max=127"`

	IPNetmask  string `json:"ip_netmask,omitempty"  yaml:"ip_netmask,omitempty"`
	IPRange    string `json:"ip_range,omitempty"    yaml:"ip_range,omitempty"`
	IPWildcard string `json:"ip_wildcard,omitempty" yaml:"ip_wildcard,omitempty"`
	FQDN       string `json:"fqdn,omitempty"        yaml:"fqdn,omitempty"        validate:"omitempty,max=255"`

	Folder  string `json:"folder,omitempty"  yaml:"folder,omitempty"  validate:"omitempty,max=64"`
	Snippet string `json:"snippet,omitempty" yaml:"snippet,omitempty" validate:"omitempty,max=64"`
	Device  string `json:"device,omitempty"  yaml:"device,omitempty"  validate:"omitempty,max=64"`
}

// Validate checks the request against the update-model contract.
func (r *AddressUpdateRequest) Validate() error {
	if err := validateStruct(r); err != nil {
		return err
	}

	return validateContainer(r.Folder, r.Snippet, r.Device)
}

// DynamicFilter is the tag-expression member selector of a dynamic address
// group.
type DynamicFilter struct {
	Filter string `json:"filter" yaml:"filter" validate:"required,max=2047"`
}

// AddressGroup represents an address group, either static (a member list)
// or dynamic (a tag filter expression).
type AddressGroup struct {
	Resource `yaml:",inline"`

	Name        string   `json:"name"                  yaml:"name"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Tags        []string `json:"tag,omitempty"         yaml:"tag,omitempty"`

	Static  []string       `json:"static,omitempty"  yaml:"static,omitempty"`
	Dynamic *DynamicFilter `json:"dynamic,omitempty" yaml:"dynamic,omitempty"`

	Folder  string `json:"folder,omitempty"  yaml:"folder,omitempty"`
	Snippet string `json:"snippet,omitempty" yaml:"snippet,omitempty"`
	Device  string `json:"device,omitempty"  yaml:"device,omitempty"`
}

// AddressGroupCreateRequest represents a request to create an address group.
type AddressGroupCreateRequest struct {
	Name        string   `json:"name"                  yaml:"name"                  validate:"required,max=63"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty" validate:"omitempty,max=1023"`
	Tags        []string `json:"tag,omitempty"         yaml:"tag,omitempty"         validate:"omitempty,dive,max=127"`

	Static  []string       `json:"static,omitempty"  yaml:"static,omitempty"  validate:"omitempty,min=1,dive,max=63"`
	Dynamic *DynamicFilter `json:"dynamic,omitempty" yaml:"dynamic,omitempty"`

	Folder  string `json:"folder,omitempty"  yaml:"folder,omitempty"  validate:"omitempty,max=64"`
	Snippet string `json:"snippet,omitempty" yaml:"snippet,omitempty" validate:"omitempty,max=64"`
	Device  string `json:"device,omitempty"  yaml:"device,omitempty"  validate:"omitempty,max=64"`
}

// Validate checks the request against the create-model contract.
func (r *AddressGroupCreateRequest) Validate() error {
	if err := validateStruct(r); err != nil {
		return err
	}

	if err := validateContainer(r.Folder, r.Snippet, r.Device); err != nil {
		return err
	}

	if (len(r.Static) == 0) == (r.Dynamic == nil) {
		return NewInvalidObjectError("exactly one of 'static' or 'dynamic' must be provided")
	}

	return nil
}

// AddressGroupUpdateRequest represents a full-replace update of an address
// group.
type AddressGroupUpdateRequest struct {
	ID          string   `json:"id"                    yaml:"id"                    validate:"required"`
	Name        string   `json:"name"                  yaml:"name"                  validate:"required,max=63"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty" validate:"omitempty,max=1023"`
	Tags        []string `json:"tag,omitempty"         yaml:"tag,omitempty"         validate:"omitempty,dive,max=127"`

	Static  []string       `json:"static,omitempty"  yaml:"static,omitempty"  validate:"omitempty,min=1,dive,max=63"`
	Dynamic *DynamicFilter `json:"dynamic,omitempty" yaml:"dynamic,omitempty"`

	Folder  string `json:"folder,omitempty"  yaml:"folder,omitempty"  validate:"omitempty,max=64"`
	Snippet string `json:"snippet,omitempty" yaml:"snippet,omitempty" validate:"omitempty,max=64"`
	Device  string `json:"device,omitempty"  yaml:"device,omitempty"  validate:"omitempty,max=64"`
}

// Validate checks the request against the update-model contract.
func (r *AddressGroupUpdateRequest) Validate() error {
	if err := validateStruct(r); err != nil {
		return err
	}

	return validateContainer(r.Folder, r.Snippet, r.Device)
}

// TagColors lists the color names the API accepts on tag objects.
var TagColors = []string{
	"Red", "Green", "Blue", "Yellow", "Copper", "Orange", "Purple",
	"Gray", "Light Green", "Cyan", "Light Gray", "Blue Gray", "Lime",
	"Black", "Gold", "Brown", "Olive", "Maroon", "Red-Orange",
	"Yellow-Orange", "Forest Green", "Turquoise Blue", "Azure Blue",
	"Cerulean Blue", "Midnight Blue", "Medium Blue", "Cobalt Blue",
	"Violet Blue", "Blue Violet", "Medium Violet", "Medium Rose",
	"Lavender", "Orchid", "Thistle", "Peach", "Salmon", "Magenta",
	"Red Violet", "Mahogany", "Burnt Sienna", "Chestnut",
}

// Tag represents a tag object.
type Tag struct {
	Resource `yaml:",inline"`

	Name     string `json:"name"               yaml:"name"`
	Color    string `json:"color,omitempty"    yaml:"color,omitempty"`
	Comments string `json:"comments,omitempty" yaml:"comments,omitempty"`

	Folder  string `json:"folder,omitempty"  yaml:"folder,omitempty"`
	Snippet string `json:"snippet,omitempty" yaml:"snippet,omitempty"`
	Device  string `json:"device,omitempty"  yaml:"device,omitempty"`
}

// TagCreateRequest represents a request to create a tag.
type TagCreateRequest struct {
	Name     string `json:"name"               yaml:"name"               validate:"required,max=127"`
	Color    string `json:"color,omitempty"    yaml:"color,omitempty"`
	Comments string `json:"comments,omitempty" yaml:"comments,omitempty" validate:"omitempty,max=1023"`

	Folder  string `json:"folder,omitempty"  yaml:"folder,omitempty"  validate:"omitempty,max=64"`
	Snippet string `json:"snippet,omitempty" yaml:"snippet,omitempty" validate:"omitempty,max=64"`
	Device  string `json:"device,omitempty"  yaml:"device,omitempty"  validate:"omitempty,max=64"`
}

// Validate checks the request against the create-model contract.
func (r *TagCreateRequest) Validate() error {
	if err := validateStruct(r); err != nil {
		return err
	}

	if err := validateContainer(r.Folder, r.Snippet, r.Device); err != nil {
		return err
	}

	return validateTagColor(r.Color)
}

// TagUpdateRequest represents a full-replace update of a tag.
type TagUpdateRequest struct {
	ID       string `json:"id"                 yaml:"id"                 validate:"required"`
	Name     string `json:"name"               yaml:"name"               validate:"required,max=127"`
	Color    string `json:"color,omitempty"    yaml:"color,omitempty"`
	Comments string `json:"comments,omitempty" yaml:"comments,omitempty" validate:"omitempty,max=1023"`

	Folder  string `json:"folder,omitempty"  yaml:"folder,omitempty"  validate:"omitempty,max=64"`
	Snippet string `json:"snippet,omitempty" yaml:"snippet,omitempty" validate:"omitempty,max=64"`
	Device  string `json:"device,omitempty"  yaml:"device,omitempty"  validate:"omitempty,max=64"`
}

// Validate checks the request against the update-model contract.
func (r *TagUpdateRequest) Validate() error {
	if err := validateStruct(r); err != nil {
		return err
	}

	if err := validateContainer(r.Folder, r.Snippet, r.Device); err != nil {
		return err
	}

	return validateTagColor(r.Color)
}
