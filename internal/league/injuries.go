package league

// InjuryType describes one entry in the injury table: a recovery window and a
// severity tag.
type InjuryType struct {
	Name     string
	MinWeeks int
	MaxWeeks int
	Severity Severity
}

// InjuryTypes is the table injuries are drawn from.
var InjuryTypes = map[string]InjuryType{
	"ANKLE_SPRAIN":  {Name: "Ankle Sprain", MinWeeks: 1, MaxWeeks: 3, Severity: SeverityMinor},
	"HAMSTRING":     {Name: "Hamstring Strain", MinWeeks: 2, MaxWeeks: 4, Severity: SeverityMinor},
	"CONCUSSION":    {Name: "Concussion", MinWeeks: 1, MaxWeeks: 2, Severity: SeverityModerate},
	"SHOULDER":      {Name: "Shoulder Injury", MinWeeks: 3, MaxWeeks: 6, Severity: SeverityModerate},
	"KNEE_SPRAIN":   {Name: "Knee Sprain", MinWeeks: 2, MaxWeeks: 5, Severity: SeverityModerate},
	"BROKEN_FINGER": {Name: "Broken Finger", MinWeeks: 3, MaxWeeks: 5, Severity: SeverityModerate},
	"GROIN":         {Name: "Groin Strain", MinWeeks: 2, MaxWeeks: 4, Severity: SeverityMinor},
	"BACK":          {Name: "Back Injury", MinWeeks: 2, MaxWeeks: 6, Severity: SeverityModerate},
	"ACL_TEAR":      {Name: "ACL Tear", MinWeeks: 30, MaxWeeks: 40, Severity: SeverityMajor},
	"BROKEN_ARM":    {Name: "Broken Arm", MinWeeks: 6, MaxWeeks: 10, Severity: SeverityMajor},
	"ACHILLES":      {Name: "Achilles Tear", MinWeeks: 30, MaxWeeks: 45, Severity: SeverityMajor},
}

// InjuryKeys lists the table keys in a stable order so draws are
// reproducible under a fixed seed.
var InjuryKeys = []string{
	"ANKLE_SPRAIN", "HAMSTRING", "CONCUSSION", "SHOULDER", "KNEE_SPRAIN",
	"BROKEN_FINGER", "GROIN", "BACK", "ACL_TEAR", "BROKEN_ARM", "ACHILLES",
}
