package basictag_test

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/basictag/basictag-go/pkg/tag"
	"github.com/basictag/basictag-go/pkg/tagdef"
	"github.com/basictag/basictag-go/pkg/taglog"
	"github.com/basictag/basictag-go/pkg/value"
)

const e2eDefinitions = `
version: 1
tags:
  - name: motor.speed
    alias: 1
    type: int32
    local_writable: true
    initial: 1500
  - name: motor.temp
    alias: 2
    type: double
    initial: 21.5
  - name: device.id
    alias: 3
    type: uuid
    local_writable: true
    validate: uuid
`

// TestE2E_DefinitionToCapture walks the full path: parse a definition file,
// instantiate the tags, poll for changes, write through a tag, and read the
// resulting CBOR event capture back with a filter.
func TestE2E_DefinitionToCapture(t *testing.T) {
	capturePath := filepath.Join(t.TempDir(), "events.cbor")

	capture, err := taglog.NewFileLogger(capturePath)
	if err != nil {
		t.Fatalf("Failed to open capture: %v", err)
	}

	defs, err := tagdef.Parse([]byte(e2eDefinitions))
	if err != nil {
		t.Fatalf("Failed to parse definitions: %v", err)
	}

	reg := tag.NewRegistry()
	reg.SetLogger(capture)
	var clock uint64 = 1000
	if err := reg.SetTimestampFunc(func() uint64 { return clock }); err != nil {
		t.Fatalf("Failed to set timestamp source: %v", err)
	}

	bank, err := defs.Instantiate(reg)
	if err != nil {
		t.Fatalf("Failed to instantiate definitions: %v", err)
	}
	if reg.Count() != 3 {
		t.Fatalf("Expected 3 tags, got %d", reg.Count())
	}

	// First scan reports every tag's initial observation.
	changed, err := reg.ReadAll()
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if !changed {
		t.Error("First scan should report changes")
	}

	// Steady state is quiet.
	clock = 2000
	if changed, _ = reg.ReadAll(); changed {
		t.Error("Unchanged scan should be quiet")
	}

	// A write lands in the backing cell but only shows up on the next scan.
	speed := bank.Tag("motor.speed")
	v := value.NewInt32(0, 1800)
	if err := speed.Write(&v); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	cell := bank.Cell("motor.speed").(*int32)
	if *cell != 1800 {
		t.Errorf("Cell not updated: got %d", *cell)
	}
	if speed.CurrentValue().Int32() != 1500 {
		t.Error("Write must not touch the value snapshot")
	}

	clock = 3000
	if changed, _ = reg.ReadAll(); !changed {
		t.Error("Scan after write should report a change")
	}
	if speed.CurrentValue().Int32() != 1800 {
		t.Errorf("Current value not updated: got %d", speed.CurrentValue().Int32())
	}
	if speed.PreviousValue().Int32() != 1500 {
		t.Errorf("Previous value not shifted: got %d", speed.PreviousValue().Int32())
	}

	// The UUID validator from the definition file is live.
	id := bank.Tag("device.id")
	bad := value.NewString(0, value.DataTypeUUID, "not-a-uuid")
	if err := id.Write(&bad); err == nil {
		t.Error("Invalid UUID write should be rejected")
	}

	if err := reg.DeleteTag(speed); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := capture.Close(); err != nil {
		t.Fatalf("Failed to close capture: %v", err)
	}

	// Replay the capture: expect exactly the motor.speed change events.
	changeCat := taglog.CategoryChange
	reader, err := taglog.NewFilteredReader(capturePath, taglog.Filter{
		TagName:  "motor.speed",
		Category: &changeCat,
	})
	if err != nil {
		t.Fatalf("Failed to open capture reader: %v", err)
	}
	defer reader.Close()

	var readAts []uint64
	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Capture read failed: %v", err)
		}
		if event.RegistryID != reg.ID() {
			t.Errorf("Event carries wrong registry ID: %s", event.RegistryID)
		}
		readAts = append(readAts, event.Change.ReadAt)
	}
	want := []uint64{1000, 3000}
	if len(readAts) != len(want) {
		t.Fatalf("Expected %d change events, got %d", len(want), len(readAts))
	}
	for i := range want {
		if readAts[i] != want[i] {
			t.Errorf("Change %d at %d, expected %d", i, readAts[i], want[i])
		}
	}
}
