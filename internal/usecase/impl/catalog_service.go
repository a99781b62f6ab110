package impl

import (
	"time"

	"github.com/krzysztof-piechowski/ecommerce-elt-pipeline/config"
	"github.com/krzysztof-piechowski/ecommerce-elt-pipeline/internal/domain/entity"
	"github.com/krzysztof-piechowski/ecommerce-elt-pipeline/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// ErrEmptyCatalog is returned when the catalog source contains no entries.
// Generating orders against an empty catalog would emit degenerate data, so
// the run must fail before any batch is produced.
var ErrEmptyCatalog = errors.New("product catalog is empty")

// catalogEpoch is the fixed lifecycle timestamp of every catalog record.
// The catalog is static data; its timestamps never move between runs.
var catalogEpoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

type catalogEntry struct {
	name     string
	category string
	brand    string
	price    float64
}

type catalogService struct {
	currency string
	entries  []catalogEntry
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	Config *config.Config
}

// NewCatalogService creates the static catalog builder.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		currency: params.Config.Generation.Currency,
		entries:  productCatalog,
	}
}

// Build assigns sequential ids 1..K to the fixed entry list. Deterministic
// and idempotent within and across runs.
func (s *catalogService) Build() ([]*entity.Product, error) {
	if len(s.entries) == 0 {
		return nil, errors.WithStack(ErrEmptyCatalog)
	}

	products := make([]*entity.Product, 0, len(s.entries))
	for i, e := range s.entries {
		products = append(products, &entity.Product{
			ID:        int64(i + 1),
			Name:      e.name,
			Category:  e.category,
			Brand:     e.brand,
			Price:     decimal.NewFromFloat(e.price),
			Currency:  s.currency,
			Status:    "ACTIVE",
			CreatedAt: catalogEpoch,
			UpdatedAt: catalogEpoch,
		})
	}

	return products, nil
}

var productCatalog = []catalogEntry{
	// Electronics
	{"iPhone 15 Pro", "Electronics", "Apple", 1199.00},
	{"Samsung Galaxy S24", "Electronics", "Samsung", 999.00},
	{"MacBook Pro 16", "Electronics", "Apple", 2499.00},
	{"Dell XPS 15", "Electronics", "Dell", 1899.00},
	{"iPad Air", "Electronics", "Apple", 599.00},
	{"Sony WH-1000XM5", "Electronics", "Sony", 349.00},
	{"AirPods Pro", "Electronics", "Apple", 249.00},
	{"PlayStation 5", "Electronics", "Sony", 499.00},
	{"Xbox Series X", "Electronics", "Microsoft", 499.00},
	{"Nintendo Switch OLED", "Electronics", "Nintendo", 349.00},
	{"LG OLED TV 55", "Electronics", "LG", 1499.00},
	{"Samsung 4K Monitor", "Electronics", "Samsung", 399.00},
	{"Logitech MX Master 3", "Electronics", "Logitech", 99.00},
	{"Razer BlackWidow V3", "Electronics", "Razer", 139.00},
	{"Canon EOS R6", "Electronics", "Canon", 2499.00},
	{"Sony A7 IV", "Electronics", "Sony", 2499.00},
	{"GoPro Hero 12", "Electronics", "GoPro", 399.00},
	{"DJI Mini 3 Pro", "Electronics", "DJI", 759.00},
	{"Kindle Paperwhite", "Electronics", "Amazon", 139.00},
	{"Apple Watch Series 9", "Electronics", "Apple", 399.00},

	// Home & Kitchen
	{"Dyson V15 Detect", "Home", "Dyson", 649.00},
	{"iRobot Roomba j7+", "Home", "iRobot", 799.00},
	{"Nespresso Vertuo", "Home", "Nespresso", 179.00},
	{"KitchenAid Stand Mixer", "Home", "KitchenAid", 449.00},
	{"Ninja Air Fryer", "Home", "Ninja", 129.00},
	{"Instant Pot Duo", "Home", "Instant Pot", 99.00},
	{"Philips Hue Starter Kit", "Home", "Philips", 179.00},
	{"Nest Learning Thermostat", "Home", "Google", 249.00},
	{"Ring Video Doorbell", "Home", "Ring", 99.00},
	{"Shark Navigator Vacuum", "Home", "Shark", 199.00},
	{"Cuisinart Food Processor", "Home", "Cuisinart", 149.00},
	{"Vitamix E310", "Home", "Vitamix", 349.00},
	{"All-Clad D3 Pan Set", "Home", "All-Clad", 599.00},
	{"Le Creuset Dutch Oven", "Home", "Le Creuset", 379.00},
	{"Breville Barista Express", "Home", "Breville", 699.00},
	{"Anova Sous Vide", "Home", "Anova", 199.00},
	{"Casper Original Mattress", "Home", "Casper", 1095.00},
	{"Purple Mattress Queen", "Home", "Purple", 1299.00},
	{"Brooklinen Sheets Set", "Home", "Brooklinen", 149.00},
	{"Parachute Down Comforter", "Home", "Parachute", 299.00},

	// Sports & Outdoors
	{"Peloton Bike+", "Sports", "Peloton", 2495.00},
	{"NordicTrack Treadmill", "Sports", "NordicTrack", 1599.00},
	{"Bowflex Adjustable Dumbbells", "Sports", "Bowflex", 549.00},
	{"Rogue Power Rack", "Sports", "Rogue", 895.00},
	{"Theragun PRO", "Sports", "Therabody", 599.00},
	{"Hydro Flask 32oz", "Sports", "Hydro Flask", 44.95},
	{"Yeti Cooler 45", "Sports", "Yeti", 349.00},
	{"Garmin Fenix 7", "Sports", "Garmin", 699.00},
	{"Fitbit Charge 6", "Sports", "Fitbit", 159.00},
	{"Whoop 4.0 Strap", "Sports", "Whoop", 239.00},
	{"Nike Air Zoom Pegasus", "Sports", "Nike", 139.00},
	{"Adidas Ultraboost 23", "Sports", "Adidas", 189.00},
	{"Lululemon Align Leggings", "Sports", "Lululemon", 98.00},
	{"Arc'teryx Beta Jacket", "Sports", "Arc'teryx", 649.00},
	{"Patagonia Down Sweater", "Sports", "Patagonia", 279.00},
	{"North Face Borealis Backpack", "Sports", "The North Face", 99.00},
	{"Osprey Atmos 65L", "Sports", "Osprey", 299.00},
	{"Black Diamond Headlamp", "Sports", "Black Diamond", 49.95},
	{"REI Half Dome Tent", "Sports", "REI", 299.00},
	{"MSR PocketRocket Stove", "Sports", "MSR", 44.95},

	// Fashion & Accessories
	{"Ray-Ban Aviator", "Fashion", "Ray-Ban", 189.00},
	{"Oakley Holbrook", "Fashion", "Oakley", 189.00},
	{"Michael Kors Jet Set", "Fashion", "Michael Kors", 298.00},
	{"Coach Leather Wallet", "Fashion", "Coach", 178.00},
	{"Fossil Gen 6 Smartwatch", "Fashion", "Fossil", 299.00},
	{"Swatch Sistem51", "Fashion", "Swatch", 150.00},
	{"Timex Weekender", "Fashion", "Timex", 49.95},
	{"Casio G-Shock", "Fashion", "Casio", 99.00},
	{"Herschel Little America", "Fashion", "Herschel", 119.00},
	{"Fjällräven Kånken", "Fashion", "Fjällräven", 89.00},

	// Books & Media
	{"Kindle Scribe", "Books", "Amazon", 339.00},
	{"Audible Premium Plus", "Books", "Audible", 14.95},
	{"Spotify Premium Family", "Media", "Spotify", 16.99},
	{"Netflix Premium", "Media", "Netflix", 19.99},
	{"Disney+ Subscription", "Media", "Disney", 10.99},
	{"Apple Music", "Media", "Apple", 10.99},
	{"YouTube Premium", "Media", "YouTube", 13.99},
	{"PlayStation Plus", "Media", "Sony", 9.99},
	{"Xbox Game Pass Ultimate", "Media", "Microsoft", 16.99},
	{"Nintendo Switch Online", "Media", "Nintendo", 19.99},

	// Beauty & Personal Care
	{"Dyson Airwrap", "Beauty", "Dyson", 599.00},
	{"Philips OneBlade", "Beauty", "Philips", 49.95},
	{"Oral-B iO Series 9", "Beauty", "Oral-B", 299.00},
	{"Foreo Luna 3", "Beauty", "Foreo", 219.00},
	{"NuFace Trinity", "Beauty", "NuFace", 339.00},
	{"Clarisonic Mia Smart", "Beauty", "Clarisonic", 199.00},
	{"Revlon One-Step Dryer", "Beauty", "Revlon", 59.99},
	{"Conair Infiniti Pro", "Beauty", "Conair", 44.99},

	// Office & Stationery
	{"Herman Miller Aeron", "Office", "Herman Miller", 1495.00},
	{"Steelcase Leap", "Office", "Steelcase", 1099.00},
	{"Autonomous SmartDesk", "Office", "Autonomous", 499.00},
	{"Uplift V2 Standing Desk", "Office", "Uplift", 599.00},
	{"Logitech C920 Webcam", "Office", "Logitech", 79.99},
	{"Blue Yeti Microphone", "Office", "Blue", 129.00},
	{"Elgato Stream Deck", "Office", "Elgato", 149.00},
	{"Wacom Intuos Pro", "Office", "Wacom", 379.00},
	{"Moleskine Classic Notebook", "Office", "Moleskine", 24.95},
	{"Leuchtturm1917 Dotted", "Office", "Leuchtturm", 21.95},
	{"Pilot G2 Pen Set", "Office", "Pilot", 12.99},
	{"Sharpie Permanent Markers", "Office", "Sharpie", 14.99},
	{"Post-it Notes Pack", "Office", "3M", 19.99},
	{"HP OfficeJet Pro 9015", "Office", "HP", 299.00},
}
