package normalize

// Closed vocabulary tables curated from observed storefront wording.
// Entries are ordered from most to least specific so the substring tier
// resolves compound terms ("Teilleder" before "Leder") correctly.

// Fuel maps source fuel wording to canonical fuel types.
var Fuel = Table{
	{Key: "Benzin", Canonical: "PETROL"},
	{Key: "Super", Canonical: "PETROL"},
	{Key: "Diesel", Canonical: "DIESEL"},
	{Key: "Elektro", Canonical: "ELECTRIC"},
	{Key: "Strom", Canonical: "ELECTRIC"},
	{Key: "Plug-in-Hybrid", Canonical: "PLUGIN_HYBRID"},
	{Key: "Hybrid", Canonical: "HYBRID"},
	{Key: "Autogas", Canonical: "LPG"},
	{Key: "LPG", Canonical: "LPG"},
	{Key: "Erdgas", Canonical: "CNG"},
	{Key: "CNG", Canonical: "CNG"},
	{Key: "Wasserstoff", Canonical: "HYDROGEN"},
}

// Gearbox maps source gearbox wording to canonical gearbox types.
var Gearbox = Table{
	{Key: "Schaltgetriebe", Canonical: "MANUAL"},
	{Key: "Handschaltung", Canonical: "MANUAL"},
	{Key: "Halbautomatik", Canonical: "SEMI_AUTOMATIC"},
	{Key: "Automatik", Canonical: "AUTOMATIC"},
	{Key: "Automatikgetriebe", Canonical: "AUTOMATIC"},
	{Key: "Doppelkupplung", Canonical: "AUTOMATIC"},
	{Key: "DSG", Canonical: "AUTOMATIC"},
}

// Body maps source body wording to canonical body types.
var Body = Table{
	{Key: "Limousine", Canonical: "SEDAN"},
	{Key: "Kombi", Canonical: "ESTATE"},
	{Key: "Kleinwagen", Canonical: "COMPACT"},
	{Key: "Geländewagen", Canonical: "SUV"},
	{Key: "SUV", Canonical: "SUV"},
	{Key: "Pickup", Canonical: "SUV"},
	{Key: "Cabrio", Canonical: "CONVERTIBLE"},
	{Key: "Roadster", Canonical: "CONVERTIBLE"},
	{Key: "Coupé", Canonical: "COUPE"},
	{Key: "Coupe", Canonical: "COUPE"},
	{Key: "Sportwagen", Canonical: "COUPE"},
	{Key: "Kleinbus", Canonical: "VAN"},
	{Key: "Van", Canonical: "VAN"},
	{Key: "Transporter", Canonical: "VAN"},
}

// Drive maps source drivetrain wording to canonical drive types.
var Drive = Table{
	{Key: "Frontantrieb", Canonical: "FRONT"},
	{Key: "Vorderradantrieb", Canonical: "FRONT"},
	{Key: "Heckantrieb", Canonical: "REAR"},
	{Key: "Hinterradantrieb", Canonical: "REAR"},
	{Key: "Allradantrieb", Canonical: "ALL"},
	{Key: "Allrad", Canonical: "ALL"},
	{Key: "4x4", Canonical: "ALL"},
	{Key: "4WD", Canonical: "ALL"},
}

// Climate maps source climate-control wording to canonical climate types.
var Climate = Table{
	{Key: "Klimaautomatik", Canonical: "AUTOMATIC_CLIMATE"},
	{Key: "2-Zonen-Klimaautomatik", Canonical: "AUTOMATIC_CLIMATE"},
	{Key: "Keine Klimaanlage", Canonical: "NO_CLIMATE"},
	{Key: "Klimaanlage", Canonical: "MANUAL_CLIMATE"},
}

// Color maps source color wording to canonical colors.
var Color = Table{
	{Key: "Schwarz", Canonical: "BLACK"},
	{Key: "Weiß", Canonical: "WHITE"},
	{Key: "Weiss", Canonical: "WHITE"},
	{Key: "Silber", Canonical: "SILVER"},
	{Key: "Grau", Canonical: "GREY"},
	{Key: "Anthrazit", Canonical: "GREY"},
	{Key: "Blau", Canonical: "BLUE"},
	{Key: "Rot", Canonical: "RED"},
	{Key: "Grün", Canonical: "GREEN"},
	{Key: "Gelb", Canonical: "YELLOW"},
	{Key: "Orange", Canonical: "ORANGE"},
	{Key: "Braun", Canonical: "BROWN"},
	{Key: "Beige", Canonical: "BEIGE"},
	{Key: "Gold", Canonical: "GOLD"},
	{Key: "Violett", Canonical: "PURPLE"},
	{Key: "Lila", Canonical: "PURPLE"},
}

// InteriorMaterial maps source upholstery wording to canonical materials.
var InteriorMaterial = Table{
	{Key: "Teilleder", Canonical: "PART_LEATHER"},
	{Key: "Kunstleder", Canonical: "SYNTHETIC_LEATHER"},
	{Key: "Vollleder", Canonical: "LEATHER"},
	{Key: "Leder", Canonical: "LEATHER"},
	{Key: "Alcantara", Canonical: "ALCANTARA"},
	{Key: "Velours", Canonical: "VELOUR"},
	{Key: "Stoff", Canonical: "CLOTH"},
}

// Condition maps source condition wording to canonical conditions.
var Condition = Table{
	{Key: "Neufahrzeug", Canonical: "NEW"},
	{Key: "Neuwagen", Canonical: "NEW"},
	{Key: "Neu", Canonical: "NEW"},
	{Key: "Tageszulassung", Canonical: "NEW"},
	{Key: "Gebrauchtfahrzeug", Canonical: "USED"},
	{Key: "Gebraucht", Canonical: "USED"},
	{Key: "Jahreswagen", Canonical: "USED"},
	{Key: "Vorführfahrzeug", Canonical: "USED"},
	{Key: "Oldtimer", Canonical: "USED"},
}
