package service

import (
	"strings"
	"testing"

	"logitrack/internal/model"
)

func TestEvaluateVehicleAlerts(t *testing.T) {
	tests := []struct {
		name       string
		speed      float64
		fuel       float64
		wantCount  int
		wantTypes  []model.AlertType
		wantSevers []model.AlertSeverity
	}{
		{"nominal", 60, 80, 0, nil, nil},
		{"speed at threshold", 80, 80, 0, nil, nil},
		{"speed high", 95, 80, 1, []model.AlertType{model.AlertTypeSpeed}, []model.AlertSeverity{model.SeverityHigh}},
		{"speed just under critical", 99.9, 80, 1, []model.AlertType{model.AlertTypeSpeed}, []model.AlertSeverity{model.SeverityHigh}},
		{"speed critical", 110, 80, 1, []model.AlertType{model.AlertTypeSpeed}, []model.AlertSeverity{model.SeverityCritical}},
		{"speed at 100 is critical", 100, 80, 1, []model.AlertType{model.AlertTypeSpeed}, []model.AlertSeverity{model.SeverityCritical}},
		{"fuel medium", 15, 15, 1, []model.AlertType{model.AlertTypeFuel}, []model.AlertSeverity{model.SeverityMedium}},
		{"fuel critical", 8, 8, 1, []model.AlertType{model.AlertTypeFuel}, []model.AlertSeverity{model.SeverityCritical}},
		{
			"fuel emergency stacks",
			60, 3, 2,
			[]model.AlertType{model.AlertTypeFuel, model.AlertTypeFuel},
			[]model.AlertSeverity{model.SeverityCritical, model.SeverityCritical},
		},
		{
			"speeding on empty tank",
			105, 4, 3,
			[]model.AlertType{model.AlertTypeSpeed, model.AlertTypeFuel, model.AlertTypeFuel},
			[]model.AlertSeverity{model.SeverityCritical, model.SeverityCritical, model.SeverityCritical},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &model.Vehicle{
				ID:        "v-1",
				Name:      "Truck SP-001",
				Speed:     tt.speed,
				FuelLevel: tt.fuel,
				Status:    model.VehicleStatusActive,
			}
			alerts := EvaluateVehicleAlerts(v)
			if len(alerts) != tt.wantCount {
				t.Fatalf("got %d alerts, want %d: %+v", len(alerts), tt.wantCount, alerts)
			}
			for i, alert := range alerts {
				if alert.Type != tt.wantTypes[i] {
					t.Errorf("alert %d type = %s, want %s", i, alert.Type, tt.wantTypes[i])
				}
				if alert.Severity != tt.wantSevers[i] {
					t.Errorf("alert %d severity = %s, want %s", i, alert.Severity, tt.wantSevers[i])
				}
				if alert.VehicleID != v.ID {
					t.Errorf("alert %d vehicle id = %s, want %s", i, alert.VehicleID, v.ID)
				}
				if alert.Resolved {
					t.Errorf("alert %d created resolved", i)
				}
			}
		})
	}
}

func TestEvaluateVehicleAlertsMessages(t *testing.T) {
	v := &model.Vehicle{ID: "v-1", Name: "Van SP-002", Speed: 92.46, FuelLevel: 3.21}

	alerts := EvaluateVehicleAlerts(v)
	if len(alerts) != 3 {
		t.Fatalf("got %d alerts, want 3", len(alerts))
	}

	if want := "Van SP-002 excedendo velocidade: 92.5 km/h"; alerts[0].Message != want {
		t.Errorf("speed message = %q, want %q", alerts[0].Message, want)
	}
	if want := "Van SP-002 com combustível baixo: 3.2%"; alerts[1].Message != want {
		t.Errorf("fuel message = %q, want %q", alerts[1].Message, want)
	}
	if !strings.HasPrefix(alerts[2].Message, "EMERGÊNCIA:") {
		t.Errorf("emergency message = %q, want EMERGÊNCIA prefix", alerts[2].Message)
	}
}
