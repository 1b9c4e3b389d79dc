package scm

// Link-level settings accepted on ethernet interfaces.
const (
	LinkAuto = "auto"

	LinkDuplexHalf = "half"
	LinkDuplexFull = "full"

	LinkStateUp   = "up"
	LinkStateDown = "down"
)

// PPPoE authentication protocols.
const (
	PppoeAuthCHAP = "CHAP"
	PppoeAuthPAP  = "PAP"
	PppoeAuthAuto = "auto"
)

// LinkSpeeds lists the accepted link_speed values in Mbps, plus auto.
var LinkSpeeds = []string{"auto", "10", "100", "1000", "10000", "40000", "100000"}

// Poe is the Power over Ethernet configuration of an interface.
type Poe struct {
	Enabled       *bool `json:"poe-enabled,omitempty"  yaml:"poe-enabled,omitempty"`
	ReservedPower *int  `json:"poe-rsvd-pwr,omitempty" yaml:"poe-rsvd-pwr,omitempty" validate:"omitempty,gte=0,lte=90"`
}

// SendHostname configures hostname propagation to the DHCP server.
type SendHostname struct {
	Enable   *bool  `json:"enable,omitempty"   yaml:"enable,omitempty"`
	Hostname string `json:"hostname,omitempty" yaml:"hostname,omitempty" validate:"omitempty,min=1,max=64"`
}

// DhcpClient is the DHCP client configuration of a layer 3 interface.
type DhcpClient struct {
	Enable             *bool         `json:"enable,omitempty"               yaml:"enable,omitempty"`
	CreateDefaultRoute *bool         `json:"create-default-route,omitempty" yaml:"create-default-route,omitempty"`
	DefaultRouteMetric *int          `json:"default-route-metric,omitempty" yaml:"default-route-metric,omitempty" validate:"omitempty,gte=1,lte=65535"`
	SendHostname       *SendHostname `json:"send-hostname,omitempty"        yaml:"send-hostname,omitempty"`
}

// StaticAddress is the static IP assignment carried inside a PPPoE config.
type StaticAddress struct {
	IP string `json:"ip" yaml:"ip" validate:"required,max=63"`
}

// Pppoe is the PPPoE client configuration of a layer 3 interface.
// Username and password are required whenever PPPoE is configured.
type Pppoe struct {
	Enable             *bool          `json:"enable,omitempty"               yaml:"enable,omitempty"`
	Username           string         `json:"username"                       yaml:"username"                       validate:"required,min=1,max=255"`
	Password           string         `json:"password"                       yaml:"password"                       validate:"required,max=255"`
	Authentication     string         `json:"authentication,omitempty"       yaml:"authentication,omitempty"       validate:"omitempty,oneof=CHAP PAP auto"`
	StaticAddress      *StaticAddress `json:"static-address,omitempty"       yaml:"static-address,omitempty"`
	DefaultRouteMetric *int           `json:"default-route-metric,omitempty" yaml:"default-route-metric,omitempty" validate:"omitempty,gte=1,lte=65535"`
	AccessConcentrator string         `json:"access-concentrator,omitempty"  yaml:"access-concentrator,omitempty"  validate:"omitempty,min=1,max=255"`
	Service            string         `json:"service,omitempty"              yaml:"service,omitempty"              validate:"omitempty,min=1,max=255"`
	Passive            *bool          `json:"passive,omitempty"              yaml:"passive,omitempty"`
}

// Layer3 is the layer 3 mode configuration of an ethernet interface.
// Exactly one IP method is configured: static IPs, DHCP client, or PPPoE.
type Layer3 struct {
	IPs        []string    `json:"ip,omitempty"          yaml:"ip,omitempty"          validate:"omitempty,dive,max=63"`
	DhcpClient *DhcpClient `json:"dhcp-client,omitempty" yaml:"dhcp-client,omitempty"`
	Pppoe      *Pppoe      `json:"pppoe,omitempty"       yaml:"pppoe,omitempty"`
	MTU        *int        `json:"mtu,omitempty"         yaml:"mtu,omitempty"         validate:"omitempty,gte=576,lte=9216"`
}

// Layer2 is the layer 2 mode configuration of an ethernet interface.
type Layer2 struct {
	VlanTag *int `json:"vlan-tag,omitempty" yaml:"vlan-tag,omitempty" validate:"omitempty,gte=1,lte=9999"`
}

// Tap marks an interface as a passive tap.
type Tap struct{}

// EthernetInterface represents an ethernet interface object. Exactly one
// interface mode (Layer2, Layer3, Tap) is configured.
type EthernetInterface struct {
	Resource `yaml:",inline"`

	Name    string `json:"name"              yaml:"name"`
	Comment string `json:"comment,omitempty" yaml:"comment,omitempty"`

	LinkSpeed  string `json:"link-speed,omitempty"  yaml:"link-speed,omitempty"`
	LinkDuplex string `json:"link-duplex,omitempty" yaml:"link-duplex,omitempty"`
	LinkState  string `json:"link-state,omitempty"  yaml:"link-state,omitempty"`

	Poe    *Poe    `json:"poe,omitempty"    yaml:"poe,omitempty"`
	Layer2 *Layer2 `json:"layer2,omitempty" yaml:"layer2,omitempty"`
	Layer3 *Layer3 `json:"layer3,omitempty" yaml:"layer3,omitempty"`
	Tap    *Tap    `json:"tap,omitempty"    yaml:"tap,omitempty"`

	Folder  string `json:"folder,omitempty"  yaml:"folder,omitempty"`
	Snippet string `json:"snippet,omitempty" yaml:"snippet,omitempty"`
	Device  string `json:"device,omitempty"  yaml:"device,omitempty"`
}

// EthernetInterfaceCreateRequest represents a request to create an
// ethernet interface.
type EthernetInterfaceCreateRequest struct {
	Name    string `json:"name"              yaml:"name"              validate:"required,max=63"`
	Comment string `json:"comment,omitempty" yaml:"comment,omitempty" validate:"omitempty,max=1023"`

	LinkSpeed  string `json:"link-speed,omitempty"  yaml:"link-speed,omitempty"  validate:"omitempty,oneof=auto 10 100 1000 10000 40000 100000"`
	LinkDuplex string `json:"link-duplex,omitempty" yaml:"link-duplex,omitempty" validate:"omitempty,oneof=auto half full"`
	LinkState  string `json:"link-state,omitempty"  yaml:"link-state,omitempty"  validate:"omitempty,oneof=auto up down"`

	Poe    *Poe    `json:"poe,omitempty"    yaml:"poe,omitempty"`
	Layer2 *Layer2 `json:"layer2,omitempty" yaml:"layer2,omitempty"`
	Layer3 *Layer3 `json:"layer3,omitempty" yaml:"layer3,omitempty"`
	Tap    *Tap    `json:"tap,omitempty"    yaml:"tap,omitempty"`

	Folder  string `json:"folder,omitempty"  yaml:"folder,omitempty"  validate:"omitempty,max=64"`
	Snippet string `json:"snippet,omitempty" yaml:"snippet,omitempty" validate:"omitempty,max=64"`
	Device  string `json:"device,omitempty"  yaml:"device,omitempty"  validate:"omitempty,max=64"`
}

// Validate checks the request against the create-model contract.
func (r *EthernetInterfaceCreateRequest) Validate() error {
	if err := validateStruct(r); err != nil {
		return err
	}

	if err := validateContainer(r.Folder, r.Snippet, r.Device); err != nil {
		return err
	}

	return validateInterfaceMode(r.Layer2, r.Layer3, r.Tap)
}

// EthernetInterfaceUpdateRequest represents a full-replace update of an
// ethernet interface.
type EthernetInterfaceUpdateRequest struct {
	ID      string `json:"id"                yaml:"id"                validate:"required"`
	Name    string `json:"name"              yaml:"name"              validate:"required,max=63"`
	Comment string `json:"comment,omitempty" yaml:"comment,omitempty" validate:"omitempty,max=1023"`

	LinkSpeed  string `json:"link-speed,omitempty"  yaml:"link-speed,omitempty"  validate:"omitempty,oneof=auto 10 100 1000 10000 40000 100000"`
	LinkDuplex string `json:"link-duplex,omitempty" yaml:"link-duplex,omitempty" validate:"omitempty,oneof=auto half full"`
	LinkState  string `json:"link-state,omitempty"  yaml:"link-state,omitempty"  validate:"omitempty,oneof=auto up down"`

	Poe    *Poe    `json:"poe,omitempty"    yaml:"poe,omitempty"`
	Layer2 *Layer2 `json:"layer2,omitempty" yaml:"layer2,omitempty"`
	Layer3 *Layer3 `json:"layer3,omitempty" yaml:"layer3,omitempty"`
	Tap    *Tap    `json:"tap,omitempty"    yaml:"tap,omitempty"`

	Folder  string `json:"folder,omitempty"  yaml:"folder,omitempty"  validate:"omitempty,max=64"`
	Snippet string `json:"snippet,omitempty" yaml:"snippet,omitempty" validate:"omitempty,max=64"`
	Device  string `json:"device,omitempty"  yaml:"device,omitempty"  validate:"omitempty,max=64"`
}

// Validate checks the request against the update-model contract.
func (r *EthernetInterfaceUpdateRequest) Validate() error {
	if err := validateStruct(r); err != nil {
		return err
	}

	if err := validateContainer(r.Folder, r.Snippet, r.Device); err != nil {
		return err
	}

	return validateInterfaceMode(r.Layer2, r.Layer3, r.Tap)
}

// validateInterfaceMode enforces the interface mode invariant: exactly one
// of tap, layer2, or layer3 is configured. A layer 3 interface additionally
// carries exactly one IP method.
func validateInterfaceMode(layer2 *Layer2, layer3 *Layer3, tap *Tap) error {
	count := 0

	if layer2 != nil {
		count++
	}

	if layer3 != nil {
		count++
	}

	if tap != nil {
		count++
	}

	if count != 1 {
		return NewInvalidObjectError("exactly one of 'tap', 'layer2', or 'layer3' must be provided")
	}

	if layer3 != nil {
		return layer3.validateIPMethod()
	}

	return nil
}

// validateIPMethod enforces the one-of rule across the layer 3 IP methods.
func (l *Layer3) validateIPMethod() error {
	count := 0

	if len(l.IPs) > 0 {
		count++
	}

	if l.DhcpClient != nil {
		count++
	}

	if l.Pppoe != nil {
		count++
	}

	if count != 1 {
		return NewInvalidObjectError("exactly one of 'ip', 'dhcp-client', or 'pppoe' must be provided")
	}

	return nil
}
