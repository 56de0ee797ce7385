package hunters

// AttrSpec describes one allocatable key: its per-key cap (Unlimited
// keys are the reference's float('inf')-max attributes, the
// generator's fallback sink for leftover points) and an optional
// prerequisite key that must carry at least one point before this key
// may receive any.
type AttrSpec struct {
	Max       int
	Unlimited bool
	Requires  string
}

// Catalog describes one hunter kind's spendable point pools: the
// allocatable attribute/talent/inscription keys with their per-key
// caps and prerequisite chains, mutual-exclusion groups, and the
// reference's validate_build() hard ceiling on total attribute spend.
// Relics/gems/gadgets/bonuses are deliberately absent here: the
// reference's load_build()/validate_build() never caps them either —
// they're external kit the stat/loot formulas read, not a budget a
// player spends during this allocation pass.
type Catalog struct {
	Attributes      map[string]AttrSpec
	Talents         map[string]AttrSpec
	Inscriptions    map[string]AttrSpec

	// MaxAttributePoints is the reference's fixed validate_build cap
	// on total attribute spend (257/238/346 for Borge/Ozzy/Knox),
	// applied as a ceiling alongside the level-scaled 3*level budget.
	MaxAttributePoints int

	// ExclusionGroups: at most one key (talent or attribute) within a
	// group may be > 0.
	ExclusionGroups [][]string
}

// CatalogFor exposes a kind's Catalog to callers outside this package
// (the generator's constrained sampling, test fixtures).
func CatalogFor(kind HunterKind) Catalog {
	return catalogFor(kind)
}

func catalogFor(kind HunterKind) Catalog {
	switch kind {
	case KindMelee:
		return meleeCatalog
	case KindMultistrike:
		return multistrikeCatalog
	case KindSalvo:
		return salvoCatalog
	default:
		return Catalog{}
	}
}

// meleeCatalog mirrors Borge's attribute_dependencies/costs tables.
// soul_of_ares and essence_of_ylith are the unlimited attributes the
// generator dumps leftover points into once every capped key is maxed.
var meleeCatalog = Catalog{
	Attributes: map[string]AttrSpec{
		"soul_of_ares":         {Unlimited: true},
		"essence_of_ylith":     {Unlimited: true},
		"spartan_lineage":      {Max: 20},
		"timeless_mastery":     {Max: 5},
		"helltouch_barrier":    {Max: 10},
		"lifedrain_inhalers":   {Max: 10},
		"explosive_punches":    {Max: 20},
		"book_of_baal":         {Max: 10},
		"superior_sensors":     {Max: 20},
		"atlas_protocol":       {Max: 5},
		"weakspot_analysis":    {Max: 10, Requires: "superior_sensors"},
		"born_for_battle":      {Max: 5},
		"soul_of_athena":       {Max: 10},
		"soul_of_hermes":       {Max: 10},
		"soul_of_the_minotaur": {Max: 10},
	},
	Talents: map[string]AttrSpec{
		"legacy_of_ultima":      {Max: 50},
		"fires_of_war":          {Max: 10},
		"impeccable_impacts":    {Max: 10},
		"life_of_the_hunt":      {Max: 10},
		"call_me_lucky_loot":    {Max: 10},
		"death_is_my_companion": {Max: 2},
	},
	Inscriptions: map[string]AttrSpec{
		"i3": {Max: 10}, "i4": {Max: 10}, "i11": {Max: 10}, "i13": {Max: 10},
		"i14": {Max: 5}, "i23": {Max: 10}, "i24": {Max: 10}, "i27": {Max: 10},
		"i44": {Max: 10}, "i60": {Max: 10}, "i80": {Max: 10},
	},
	MaxAttributePoints: 257,
	ExclusionGroups:    [][]string{{"born_for_battle", "atlas_protocol"}},
}

// multistrikeCatalog mirrors Ozzy's tables. living_off_the_land and
// exo_piercers are the unlimited fallback-sink attributes.
// deal_with_death and cycle_of_death both scale off TimesRevived but
// are independent stacking attributes in the source, not mutually
// exclusive; this catalog declares no exclusion groups.
var multistrikeCatalog = Catalog{
	Attributes: map[string]AttrSpec{
		"living_off_the_land":     {Unlimited: true},
		"exo_piercers":            {Unlimited: true},
		"timeless_mastery":        {Max: 5},
		"shimmering_scorpion":     {Max: 5},
		"wings_of_ibu":            {Max: 5},
		"extermination_protocol":  {Max: 5},
		"soul_of_snek":            {Max: 5},
		"vectid_elixir":           {Max: 10},
		"cycle_of_death":          {Max: 5},
		"gift_of_medusa":          {Max: 5},
		"deal_with_death":         {Max: 3},
		"dance_of_dashes":         {Max: 4},
		"blessings_of_the_cat":    {Max: 20},
		"blessings_of_the_scarab": {Max: 20},
		"blessings_of_the_sisters": {Max: 1},
	},
	Talents: map[string]AttrSpec{
		"death_is_my_companion": {Max: 2},
		"tricksters_boon":       {Max: 1},
		"unfair_advantage":      {Max: 5},
		"thousand_needles":      {Max: 10},
		"omen_of_decay":         {Max: 10},
		"call_me_lucky_loot":    {Max: 10},
		"crippling_shots":       {Max: 15},
		"echo_bullets":          {Max: 20},
		"legacy_of_ultima":      {Max: 50},
	},
	Inscriptions: map[string]AttrSpec{
		"i31": {Max: 10}, "i32": {Max: 6}, "i33": {Max: 10}, "i36": {Max: 10},
		"i37": {Max: 10}, "i40": {Max: 10}, "i81": {Max: 10}, "i86": {Max: 10}, "i92": {Max: 10},
	},
	MaxAttributePoints: 238,
}

// salvoCatalog mirrors Knox's tables. release_the_kraken is the
// unlimited fallback-sink attribute. Knox's source lists no mutually
// exclusive attributes at all ("everything is dependency-based"), so
// ExclusionGroups is intentionally empty.
var salvoCatalog = Catalog{
	Attributes: map[string]AttrSpec{
		"release_the_kraken":      {Unlimited: true},
		"space_pirate_armory":     {Max: 50},
		"soul_amplification":      {Max: 100},
		"serious_efficiency":      {Max: 5},
		"fortification_elixir":    {Max: 10},
		"a_pirates_life_for_knox": {Max: 10},
		"dead_men_tell_no_tales":  {Max: 10},
		"passive_charge_tank":     {Max: 10},
		"shield_of_poseidon":      {Max: 10},
		"timeless_mastery":        {Max: 5},
	},
	Talents: map[string]AttrSpec{
		"death_is_my_companion": {Max: 2},
		"calypsos_advantage":    {Max: 5},
		"unfair_advantage":      {Max: 5},
		"ghost_bullets":         {Max: 15},
		"omen_of_defeat":        {Max: 10},
		"call_me_lucky_loot":    {Max: 10},
		"presence_of_god":       {Max: 10},
		"finishing_move":        {Max: 15},
		// legacy_of_ultima is present in the costs table but has no
		// measurable effect for Knox (WASM verified); kept here so
		// validate knows the key instead of reporting it as unknown
		// (it still only accepts points once every other talent is maxed).
		"legacy_of_ultima": {Max: 50},
	},
	Inscriptions: map[string]AttrSpec{
		"i_knox_hp": {Max: 10}, "i_knox_power": {Max: 10}, "i_knox_block": {Max: 10},
		"i_knox_charge": {Max: 10}, "i_knox_reload": {Max: 10},
	},
	MaxAttributePoints: 346,
}
