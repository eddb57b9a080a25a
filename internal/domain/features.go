package domain

// Feature-flag names accepted in filter params and reported by the
// filter-options vocabulary. The set is fixed; unknown names are ignored by
// the normalizer, never rejected.
const (
	FeatureMoonroof         = "has_moonroof"
	FeatureLeather          = "has_leather"
	FeatureHeatedSeats      = "has_heated_seats"
	FeatureVentilatedSeats  = "has_ventilated_seats"
	FeaturePremiumSound     = "has_premium_sound"
	FeaturePowerTailgate    = "has_power_tailgate"
	FeatureNavigation       = "has_navigation"
	Feature360Camera        = "has_360_camera"
	FeatureHeadsUpDisplay   = "has_heads_up_display"
	FeatureWirelessCharging = "has_wireless_charging"
	FeatureBlindSpot        = "has_blind_spot"
	FeatureLaneKeep         = "has_lane_keep"
	FeatureAdaptiveCruise   = "has_adaptive_cruise"
	FeatureTowPackage       = "has_tow_package"
	FeatureMaxTowPackage    = "has_max_tow_package"
	FeatureOffroadPackage   = "has_offroad_package"
)

// FeatureFlags is the fixed taxonomy in display order.
var FeatureFlags = []string{
	FeatureMoonroof,
	FeatureLeather,
	FeatureHeatedSeats,
	FeatureVentilatedSeats,
	FeaturePremiumSound,
	FeaturePowerTailgate,
	FeatureNavigation,
	Feature360Camera,
	FeatureHeadsUpDisplay,
	FeatureWirelessCharging,
	FeatureBlindSpot,
	FeatureLaneKeep,
	FeatureAdaptiveCruise,
	FeatureTowPackage,
	FeatureMaxTowPackage,
	FeatureOffroadPackage,
}

// FeatureLabels maps flag names to display labels for filter UIs and the
// comparison table.
var FeatureLabels = map[string]string{
	FeatureMoonroof:         "Moonroof",
	FeatureLeather:          "Leather Seats",
	FeatureHeatedSeats:      "Heated Seats",
	FeatureVentilatedSeats:  "Ventilated Seats",
	FeaturePremiumSound:     "Premium Sound",
	FeaturePowerTailgate:    "Power Tailgate",
	FeatureNavigation:       "Navigation",
	Feature360Camera:        "360 Camera",
	FeatureHeadsUpDisplay:   "Head-Up Display",
	FeatureWirelessCharging: "Wireless Charging",
	FeatureBlindSpot:        "Blind Spot Monitor",
	FeatureLaneKeep:         "Lane Keep Assist",
	FeatureAdaptiveCruise:   "Adaptive Cruise",
	FeatureTowPackage:       "Tow Package",
	FeatureMaxTowPackage:    "Max Tow Package",
	FeatureOffroadPackage:   "Off-Road Package",
}

var featureGetters = map[string]func(*Listing) bool{
	FeatureMoonroof:         func(l *Listing) bool { return l.HasMoonroof },
	FeatureLeather:          func(l *Listing) bool { return l.HasLeather },
	FeatureHeatedSeats:      func(l *Listing) bool { return l.HasHeatedSeats },
	FeatureVentilatedSeats:  func(l *Listing) bool { return l.HasVentilatedSeats },
	FeaturePremiumSound:     func(l *Listing) bool { return l.HasPremiumSound },
	FeaturePowerTailgate:    func(l *Listing) bool { return l.HasPowerTailgate },
	FeatureNavigation:       func(l *Listing) bool { return l.HasNavigation },
	Feature360Camera:        func(l *Listing) bool { return l.Has360Camera },
	FeatureHeadsUpDisplay:   func(l *Listing) bool { return l.HasHeadsUpDisplay },
	FeatureWirelessCharging: func(l *Listing) bool { return l.HasWirelessCharging },
	FeatureBlindSpot:        func(l *Listing) bool { return l.HasBlindSpot },
	FeatureLaneKeep:         func(l *Listing) bool { return l.HasLaneKeep },
	FeatureAdaptiveCruise:   func(l *Listing) bool { return l.HasAdaptiveCruise },
	FeatureTowPackage:       func(l *Listing) bool { return l.HasTowPackage },
	FeatureMaxTowPackage:    func(l *Listing) bool { return l.HasMaxTowPackage },
	FeatureOffroadPackage:   func(l *Listing) bool { return l.HasOffroadPackage },
}

var featureSetters = map[string]func(*Listing, bool){
	FeatureMoonroof:         func(l *Listing, v bool) { l.HasMoonroof = v },
	FeatureLeather:          func(l *Listing, v bool) { l.HasLeather = v },
	FeatureHeatedSeats:      func(l *Listing, v bool) { l.HasHeatedSeats = v },
	FeatureVentilatedSeats:  func(l *Listing, v bool) { l.HasVentilatedSeats = v },
	FeaturePremiumSound:     func(l *Listing, v bool) { l.HasPremiumSound = v },
	FeaturePowerTailgate:    func(l *Listing, v bool) { l.HasPowerTailgate = v },
	FeatureNavigation:       func(l *Listing, v bool) { l.HasNavigation = v },
	Feature360Camera:        func(l *Listing, v bool) { l.Has360Camera = v },
	FeatureHeadsUpDisplay:   func(l *Listing, v bool) { l.HasHeadsUpDisplay = v },
	FeatureWirelessCharging: func(l *Listing, v bool) { l.HasWirelessCharging = v },
	FeatureBlindSpot:        func(l *Listing, v bool) { l.HasBlindSpot = v },
	FeatureLaneKeep:         func(l *Listing, v bool) { l.HasLaneKeep = v },
	FeatureAdaptiveCruise:   func(l *Listing, v bool) { l.HasAdaptiveCruise = v },
	FeatureTowPackage:       func(l *Listing, v bool) { l.HasTowPackage = v },
	FeatureMaxTowPackage:    func(l *Listing, v bool) { l.HasMaxTowPackage = v },
	FeatureOffroadPackage:   func(l *Listing, v bool) { l.HasOffroadPackage = v },
}

// IsFeatureFlag reports whether name is one of the known flags.
func IsFeatureFlag(name string) bool {
	_, ok := featureGetters[name]
	return ok
}

// Feature returns the flag value for a known name; ok is false for unknown
// names.
func (l *Listing) Feature(name string) (value, ok bool) {
	get, ok := featureGetters[name]
	if !ok {
		return false, false
	}
	return get(l), true
}

// SetFeature sets a flag by name; unknown names are ignored and report false.
func (l *Listing) SetFeature(name string, v bool) bool {
	set, ok := featureSetters[name]
	if !ok {
		return false
	}
	set(l, v)
	return true
}
