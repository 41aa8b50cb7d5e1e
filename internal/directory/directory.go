// Package directory holds the static doctor-assignment tables: which doctor
// covers each department, and the alias map that folds legacy doctor IDs into
// current display names.
package directory

// departmentDoctors assigns the default doctor for each department a patient
// can pick when submitting a report.
var departmentDoctors = map[string]string{
	"Orthopedics":      "Dr. Evelyn Reed",
	"Cardiology":       "Dr. Marcus Chen",
	"Neurology":        "Dr. Sarah Jones",
	"General Medicine": "Dr. Alex Thompson",
	"Dermatology":      "Dr. Chloe Davis",
	"ENT":              "Dr. Omar Khan",
	"Gastroenterology": "Dr. Lena Rodriguez",
	"Physiotherapy":    "Dr. Ben Carter",
}

// doctorAliases maps legacy doctor identifiers still present in old records
// to current display names.
var doctorAliases = map[string]string{
	"doctor_01":   "Dr. Evelyn Reed",
	"doctor_0001": "Dr. Evelyn Reed",
	"doctor_02":   "Dr. Marcus Chen",
	"doctor_06":   "Dr. Omar Khan",
}

const Unassigned = "Unassigned"

// DoctorForDepartment returns the doctor assigned to a department, or
// Unassigned for unknown departments.
func DoctorForDepartment(department string) string {
	if d, ok := departmentDoctors[department]; ok {
		return d
	}
	return Unassigned
}

// Normalize resolves legacy doctor identifiers to display names. Names that
// are not aliases pass through unchanged; empty input normalizes to
// Unassigned.
func Normalize(name string) string {
	if name == "" {
		return Unassigned
	}
	if display, ok := doctorAliases[name]; ok {
		return display
	}
	return name
}

// Departments lists every department patients can report under.
func Departments() []string {
	out := make([]string, 0, len(departmentDoctors))
	for d := range departmentDoctors {
		out = append(out, d)
	}
	return out
}

// KnownDepartment reports whether a department exists in the table.
func KnownDepartment(department string) bool {
	_, ok := departmentDoctors[department]
	return ok
}
