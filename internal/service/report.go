package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

// exportAlertLimit bounds the alert history included in a report
const exportAlertLimit = 500

// ReportService generates downloadable fleet reports
type ReportService struct {
	registry *FleetRegistry
	alerts   AlertStore
}

// NewReportService creates a report service
func NewReportService(registry *FleetRegistry, alerts AlertStore) *ReportService {
	return &ReportService{
		registry: registry,
		alerts:   alerts,
	}
}

// ExportFleetReport builds an Excel workbook with the current fleet state
// and recent alert history
func (s *ReportService) ExportFleetReport(ctx context.Context) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	vehicleSheet := "Vehicles"
	f.SetSheetName("Sheet1", vehicleSheet)

	vehicleHeaders := []string{"ID", "Name", "Driver", "Status", "Lat", "Lng", "Speed (km/h)", "Fuel (%)", "Odometer (km)", "Engine Hours", "Last Updated"}
	for i, header := range vehicleHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(vehicleSheet, cell, header)
	}

	for row, v := range s.registry.List() {
		values := []interface{}{
			v.ID, v.Name, v.DriverName, string(v.Status),
			v.Lat, v.Lng, v.Speed, v.FuelLevel,
			v.Odometer, v.EngineHours, v.LastUpdated.Format(time.RFC3339),
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(vehicleSheet, cell, value)
		}
	}
	f.SetColWidth(vehicleSheet, "A", "K", 20)

	alertSheet := "Alerts"
	f.NewSheet(alertSheet)

	alertHeaders := []string{"ID", "Vehicle ID", "Type", "Severity", "Message", "Timestamp", "Resolved"}
	for i, header := range alertHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(alertSheet, cell, header)
	}

	alerts, err := s.alerts.List(ctx, exportAlertLimit)
	if err != nil {
		return nil, fmt.Errorf("load alerts: %w", err)
	}
	for row, a := range alerts {
		values := []interface{}{
			a.ID, a.VehicleID, string(a.Type), string(a.Severity),
			a.Message, a.Timestamp.Format(time.RFC3339), a.Resolved,
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(alertSheet, cell, value)
		}
	}
	f.SetColWidth(alertSheet, "A", "G", 24)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf, nil
}
