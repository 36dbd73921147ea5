package store

import "github.com/madhih2000/OEE-Dashboard/pkg/model"

// sampleRecords is the production line the dashboard ships with.
func sampleRecords() []model.ProcessRecord {
	i, f := model.Int, model.Float
	return []model.ProcessRecord{
		{Step: "Paste Grinding", Status: model.StatusRunning, Lot: i(20005), Units: i(1043), RunTime: f(1.3), ExpectedTime: f(1.5), Downtime: 8, FailureRate: f(5), Availability: 86.67, Performance: 86.67, Quality: 95, OEE: 71.36},
		{Step: "Machine 1", Status: model.StatusRunning, Lot: i(20002), Units: i(205), RunTime: f(20), ExpectedTime: f(30), Downtime: 12, Availability: 66.67, Performance: 66.67, MaterialUsed: f(32.4), WasteMaterial: f(4.2), Quality: 100, OEE: 44.44},
		{Step: "Machine 2", Status: model.StatusRunning, Lot: i(20004), Units: i(102), RunTime: f(74), ExpectedTime: f(108), Downtime: 40, Availability: 68.52, Performance: 68.52, MaterialUsed: f(42.5), WasteMaterial: f(5.3), Quality: 100, OEE: 46.95},
		{Step: "Machine 3", Status: model.StatusStopped, Units: i(733), Downtime: 3, Availability: 0, Performance: 0, Quality: 97, OEE: 0},
		{Step: "Furnace", Status: model.StatusRunning, Lot: i(19999), Units: i(1037), RunTime: f(8), ExpectedTime: f(10), Downtime: 4, Availability: 80, Performance: 80, Quality: 100, OEE: 64},
		{Step: "Wirecut", Status: model.StatusRunning, Lot: i(20000), Units: i(1036), RunTime: f(3), ExpectedTime: f(4), Downtime: 15, Availability: 75, Performance: 75, Quality: 100, OEE: 56.25},
		{Step: "Machining", Status: model.StatusStopped, Units: i(1035), Downtime: 20, FailureRate: f(4), Availability: 0, Performance: 0, Quality: 96, OEE: 0},
		{Step: "Dimension Measurement", Status: model.StatusRunning, Lot: i(19998), Units: i(1034), RunTime: f(1), ExpectedTime: f(3), Downtime: 30, FailureRate: f(4), Availability: 33.33, Performance: 33.33, Quality: 96, OEE: 10.67},
		{Step: "Tensile Strength Measurement", Status: model.StatusRunning, Lot: i(19998), Units: i(1034), RunTime: f(0.5), ExpectedTime: f(1), Downtime: 14, FailureRate: f(10), Availability: 50, Performance: 50, Quality: 90, OEE: 22.5},
		{Step: "Packing", Status: model.StatusRunning, Lot: i(19997), Units: i(1033), RunTime: f(1), ExpectedTime: f(1), Downtime: 70, Availability: 100, Performance: 100, Quality: 100, OEE: 100},
		{Step: "Shipping", Status: model.StatusRunning, Lot: i(19996), Units: i(1032), RunTime: f(1), ExpectedTime: f(2), Downtime: 70, Availability: 50, Performance: 50, Quality: 100, OEE: 25},
	}
}

// Sample returns a store over the built-in production line.
func Sample() *Store {
	s, err := New(sampleRecords())
	if err != nil {
		panic("store: invalid sample data: " + err.Error())
	}
	return s
}
