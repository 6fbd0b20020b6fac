package models

// Countries is the static lookup list offered for patient origin input.
var Countries = []string{
	"Shqipëri",
	"Kosovë",
	"Maqedonia e Veriut",
	"Mali i Zi",
	"Serbi",
	"Greqi",
	"Itali",
	"Turqi",
	"Gjermani",
	"Austri",
	"Zvicër",
	"Francë",
	"Belgjikë",
	"Holandë",
	"Britani e Madhe",
	"Suedi",
	"Norvegji",
	"Kroaci",
	"Slloveni",
	"Bullgari",
	"Rumani",
	"SHBA",
	"Kanada",
	"Australi",
}
