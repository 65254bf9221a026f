package py

// Model registry keys referenced by name from other packages (lateral,
// bnwf) when resolving the AUTO p-y selection of spec §4.4: "Clay/Silt/
// Organic -> Matlock Soft Clay; Sand/Gravel -> API Sand."
const (
	KeyMatlockSoftClay = "matlock-soft-clay"
	KeyAPISand         = "api-sand"
)

// AutoKey returns the registry key AUTO resolves to for a cohesive
// (Clay/Silt/Organic) or cohesionless (Sand/Gravel) layer, per spec §4.4.
// Callers pass soil.Type.IsCohesive() so this package stays independent of
// the soil package.
func AutoKey(cohesive bool) string {
	if cohesive {
		return KeyMatlockSoftClay
	}
	return KeyAPISand
}
