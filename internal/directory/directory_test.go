package directory

import "testing"

func TestDoctorForDepartment(t *testing.T) {
	tests := []struct {
		department string
		want       string
	}{
		{"Orthopedics", "Dr. Evelyn Reed"},
		{"ENT", "Dr. Omar Khan"},
		{"Astrology", Unassigned},
		{"", Unassigned},
	}

	for _, tt := range tests {
		if got := DoctorForDepartment(tt.department); got != tt.want {
			t.Errorf("DoctorForDepartment(%q) = %q, want %q", tt.department, got, tt.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"doctor_01", "Dr. Evelyn Reed"},
		{"doctor_0001", "Dr. Evelyn Reed"},
		{"doctor_02", "Dr. Marcus Chen"},
		{"Dr. Marcus Chen", "Dr. Marcus Chen"},
		{"Dr. Nobody", "Dr. Nobody"},
		{"", Unassigned},
	}

	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDepartmentsCoverAssignments(t *testing.T) {
	for _, d := range Departments() {
		if !KnownDepartment(d) {
			t.Errorf("Departments() returned unknown department %q", d)
		}
		if DoctorForDepartment(d) == Unassigned {
			t.Errorf("department %q has no assigned doctor", d)
		}
	}
}
