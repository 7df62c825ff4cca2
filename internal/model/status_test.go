package model

import "testing"

func TestStatus_IsActive(t *testing.T) {
	tests := []struct {
		status   Status
		expected bool
	}{
		{StatusPending, true},
		{StatusConnecting, true},
		{StatusDownloading, true},
		{StatusProcessing, true},
		{StatusCompleted, false},
		{StatusCancelled, false},
		{StatusError, false},
	}

	for _, test := range tests {
		result := test.status.IsActive()
		if result != test.expected {
			t.Errorf("Status(%s).IsActive() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	tests := []struct {
		status   Status
		expected bool
	}{
		{StatusPending, false},
		{StatusConnecting, false},
		{StatusDownloading, false},
		{StatusProcessing, false},
		{StatusCompleted, true},
		{StatusCancelled, true},
		{StatusError, true},
	}

	for _, test := range tests {
		result := test.status.IsTerminal()
		if result != test.expected {
			t.Errorf("Status(%s).IsTerminal() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestStatus_String(t *testing.T) {
	if StatusDownloading.String() != "downloading" {
		t.Errorf("Status.String() = %s, expected downloading", StatusDownloading.String())
	}
}
