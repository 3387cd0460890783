package data

// Record is a blueprint that can be looked up by its key.
type Record interface {
	// Key is the identifying field that sector and event references use.
	Key() string
	// DisplayTitle is the human readable title; may be empty.
	DisplayTitle() string
}

// Blueprints holds the blueprint tables of the dataset
type Blueprints struct {
	Weapons        []Weapon        `json:"weapons"`
	Crew           []Crew          `json:"crew"`
	Augments       []Augment       `json:"augments"`
	Drones         []Drone         `json:"drones"`
	ShipBlueprints []ShipBlueprint `json:"shipBlueprints"`
}

// Boost describes a weapon's charge-up bonus
type Boost struct {
	Type   string `json:"type"`
	Amount Stat   `json:"amount"`
	Count  Stat   `json:"count"`
}

// Projectile is one entry of a weapon's projectile list
type Projectile struct {
	Count Stat   `json:"count"`
	Type  string `json:"type"`
	Fake  Stat   `json:"fake"`
}

// Weapon blueprint
type Weapon struct {
	Name  string `json:"Name"`
	Title string `json:"Title"`
	Type  string `json:"type"`

	Damage       Stat `json:"damage"`
	Shots        Stat `json:"shots"`
	Power        Stat `json:"power"`
	Cooldown     Stat `json:"cooldown"`
	Cost         Stat `json:"cost"`
	Rarity       Stat `json:"rarity"`
	FireChance   Stat `json:"fireChance"`
	BreachChance Stat `json:"breachChance"`

	Missiles        Stat `json:"missiles"`
	StunChance      Stat `json:"stunChance"`
	PersDamage      Stat `json:"persDamage"`
	Speed           Stat `json:"speed"`
	Length          Stat `json:"length"`
	HullBust        Stat `json:"hullBust"`
	Ion             Stat `json:"ion"`
	SysDamage       Stat `json:"sysDamage"`
	Lockdown        Stat `json:"lockdown"`
	Radius          Stat `json:"radius"`
	Stun            Stat `json:"stun"`
	Spin            Stat `json:"spin"`
	ChargeLevels    Stat `json:"chargeLevels"`
	DroneTargetable Stat `json:"drone_targetable"`

	Desc        string       `json:"desc"`
	Tooltip     string       `json:"tooltip"`
	Boost       *Boost       `json:"boost"`
	Projectiles []Projectile `json:"projectiles"`

	AnimationData *AnimationData `json:"animationData"`
}

func (w *Weapon) Key() string          { return w.Name }
func (w *Weapon) DisplayTitle() string { return w.Title }

// Crew blueprint (a crew race)
type Crew struct {
	Name      string   `json:"name"`
	Title     string   `json:"title"`
	Cost      Stat     `json:"cost"`
	Rarity    Stat     `json:"rarity"`
	BP        Stat     `json:"bp"`
	Short     string   `json:"short"`
	Desc      string   `json:"desc"`
	PowerList []string `json:"powerList"`

	AnimationData *AnimationData `json:"animationData"`
}

func (c *Crew) Key() string          { return c.Name }
func (c *Crew) DisplayTitle() string { return c.Title }

// Augment blueprint
type Augment struct {
	Name      string `json:"Name"`
	Title     string `json:"Title"`
	Cost      Stat   `json:"cost"`
	Rarity    Stat   `json:"rarity"`
	Stackable Stat   `json:"stackable"`
	BP        Stat   `json:"bp"`
	Value     Stat   `json:"value"`
	Desc      string `json:"desc"`
}

func (a *Augment) Key() string          { return a.Name }
func (a *Augment) DisplayTitle() string { return a.Title }

// Drone types with their own image layout
const (
	DroneTypeCombat  = "COMBAT"
	DroneTypeDefense = "DEFENSE"
)

// Drone blueprint
type Drone struct {
	Name     string `json:"Name"`
	Title    string `json:"Title"`
	Type     string `json:"type"`
	Power    Stat   `json:"power"`
	Cost     Stat   `json:"cost"`
	Rarity   Stat   `json:"rarity"`
	Cooldown Stat   `json:"cooldown"`
	Speed    Stat   `json:"speed"`
	Dodge    Stat   `json:"dodge"`
	BP       Stat   `json:"bp"`
	Level    Stat   `json:"level"`
	Target   string `json:"target"`
	Locked   Stat   `json:"locked"`

	WeaponBlueprint string `json:"weaponBlueprint"`
	DroneImage      string `json:"droneImage"`
	IconImage       string `json:"iconImage"`
	CrewBlueprint   string `json:"crewBlueprint"`

	Short string `json:"short"`
	Desc  string `json:"desc"`
	Tip   string `json:"tip"`
}

func (d *Drone) Key() string          { return d.Name }
func (d *Drone) DisplayTitle() string { return d.Title }

// CrewCount is a ship's starting crew
type CrewCount struct {
	Amount Stat   `json:"amount"`
	Class  string `json:"class"`
	Max    Stat   `json:"max"`
}

// ShipSystem is one installed system of a ship blueprint
type ShipSystem struct {
	Name  string `json:"name"`
	Power Stat   `json:"power"`
	Max   Stat   `json:"max"`
	Room  Stat   `json:"room"`
}

// WeaponList is a ship's weapon loadout
type WeaponList struct {
	Missiles Stat   `json:"missiles"`
	Count    Stat   `json:"count"`
	Load     string `json:"load"`
}

// DroneList is a ship's drone loadout
type DroneList struct {
	Drones Stat `json:"drones"`
	Count  Stat `json:"count"`
}

// ShipBlueprint describes an enemy or player ship
type ShipBlueprint struct {
	Name        string       `json:"name"`
	Class       string       `json:"class"`
	Layout      string       `json:"layout"`
	MaxSector   Stat         `json:"maxSector"`
	Health      Stat         `json:"health"`
	MaxPower    Stat         `json:"maxPower"`
	WeaponSlots Stat         `json:"weaponSlots"`
	DroneSlots  Stat         `json:"droneSlots"`
	BoardingAI  string       `json:"boardingAI"`
	CrewCount   *CrewCount   `json:"crewCount"`
	SystemList  []ShipSystem `json:"systemList"`
	WeaponList  *WeaponList  `json:"weaponList"`
	DroneList   *DroneList   `json:"droneList"`
	Augments    []string     `json:"augments"`
}

func (s *ShipBlueprint) Key() string { return s.Name }

// DisplayTitle is the ship class; ships have no separate title field.
func (s *ShipBlueprint) DisplayTitle() string { return s.Class }
