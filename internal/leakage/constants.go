package leakage

// Physical constants of the orifice-leak model.
//
// All pressures are in MPa and temperatures in kelvin unless noted otherwise.
// The values are fixed for the modelled gas and are never adjusted at runtime.
const (
	// KDoc is the empirical calibration factor applied to the raw flow integral.
	KDoc = 793.74

	// CelsiusToKelvin is the offset between the Celsius and Kelvin scales.
	CelsiusToKelvin = 273.15

	// PGaugeToMPa converts the gauge-pressure input unit (kgf/cm²) to MPa.
	PGaugeToMPa = 0.0980665

	// PAtmMPa is standard atmospheric pressure.
	PAtmMPa = 0.101325

	// TStd is the standard reference temperature.
	TStd = 293.15

	// PSurround is the surrounding pressure the critical pressure is compared with.
	PSurround = 0.1

	// KAdiabatic is the adiabatic index of the gas.
	KAdiabatic = 1.3027

	// ZCompressibility is the compressibility factor of the gas.
	ZCompressibility = 0.9560
)

// Display precisions, in decimal places.
const (
	PressurePlaces        = 2
	TemperaturePlaces     = 1
	AreaPlaces            = 8
	AdiabaticIndexPlaces  = 4
	CompressibilityPlaces = 4
	CriticalPlaces        = 4
	VolumePlaces          = 3
)

// Unit labels appended to the display slots.
const (
	UnitMPa         = "МПа"
	UnitKelvin      = "K"
	UnitSquareMeter = "м²"
	UnitThousandM3  = "тыс. м³"
)

// cubicMetersPerThousand scales the leaked volume for display.
const cubicMetersPerThousand = 1000
