package vocab

// Month and weekday names already capitalised for use inside prompts.
var MonthNames = []string{
	"January", "February", "March", "April", "May", "June", "July",
	"August", "September", "October", "November", "December",
}

var WeekdayNames = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

var TimesOfDay = []string{"the morning", "the afternoon", "the evening"}

var HolidayNames = []string{
	"Christmas", "Easter", "New Year's Eve", "New Year's Day", "Halloween",
}

var Years = []string{
	"2018", "2019", "2020", "2021", "2022", "2023", "2024", "2025", "2026",
}

var DayParts = []string{"Monday morning", "Tuesday afternoon", "Thursday evening"}
