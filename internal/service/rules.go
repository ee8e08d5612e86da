package service

import (
	"fmt"

	"logitrack/internal/model"
)

// alertRule derives zero or one alert from a vehicle's post-update metrics
type alertRule func(v *model.Vehicle) (model.Alert, bool)

// fleetAlertRules are evaluated independently on every tick, so a single
// vehicle can emit multiple alerts in one batch. There is no suppression:
// a vehicle breaching a threshold on consecutive ticks alerts every tick.
var fleetAlertRules = []alertRule{
	// speed over 80 km/h
	func(v *model.Vehicle) (model.Alert, bool) {
		if v.Speed <= 80 {
			return model.Alert{}, false
		}
		severity := model.SeverityHigh
		if v.Speed >= 100 {
			severity = model.SeverityCritical
		}
		msg := fmt.Sprintf("%s excedendo velocidade: %.1f km/h", v.Name, v.Speed)
		return model.NewAlert(v.ID, model.AlertTypeSpeed, msg, severity), true
	},
	// fuel below 20%
	func(v *model.Vehicle) (model.Alert, bool) {
		if v.FuelLevel >= 20 {
			return model.Alert{}, false
		}
		severity := model.SeverityMedium
		if v.FuelLevel <= 10 {
			severity = model.SeverityCritical
		}
		msg := fmt.Sprintf("%s com combustível baixo: %.1f%%", v.Name, v.FuelLevel)
		return model.NewAlert(v.ID, model.AlertTypeFuel, msg, severity), true
	},
	// fuel below 5%: an additional emergency alert that stacks with the
	// low-fuel alert above
	func(v *model.Vehicle) (model.Alert, bool) {
		if v.FuelLevel >= 5 {
			return model.Alert{}, false
		}
		msg := fmt.Sprintf("EMERGÊNCIA: %s quase sem combustível: %.1f%%", v.Name, v.FuelLevel)
		return model.NewAlert(v.ID, model.AlertTypeFuel, msg, model.SeverityCritical), true
	},
}

// EvaluateVehicleAlerts runs every alert rule against the vehicle's current
// metrics. It is a pure function of the vehicle state and keeps no history.
func EvaluateVehicleAlerts(v *model.Vehicle) []model.Alert {
	var alerts []model.Alert
	for _, rule := range fleetAlertRules {
		if alert, ok := rule(v); ok {
			alerts = append(alerts, alert)
		}
	}
	return alerts
}
