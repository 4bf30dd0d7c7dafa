package catalog

import "trendella-backend/internal/model"

// Item is a curated catalog entry. AffiliateBase is the bare product link;
// the fetcher appends store-specific affiliate parameters per request.
type Item struct {
	Product       model.NormalizedProduct
	AffiliateBase string
}

// Amazon is the curated fallback catalog used when the live Amazon API is
// unconfigured or returns nothing.
var Amazon = []Item{
	{
		Product: model.NormalizedProduct{
			ID:               "amazon_B0D1XD1ZV3",
			Store:            model.StoreAmazon,
			Title:            "Echo Dot (5th Gen) Smart Speaker with Alexa",
			DescriptionShort: "Compact smart speaker with improved sound, Alexa voice control, and smart home integration.",
			Image:            "https://m.media-amazon.com/images/I/71h6eeNMzuL._AC_SL1000_.jpg",
			Price:            model.Price{Value: 49.99, Currency: "USD"},
			Rating:           model.Rating{Value: 4.7, Count: 89000},
			Badges:           []string{"bestseller", "prime_shipping", "smart_home"},
			Raw:              map[string]any{"asin": "B0D1XD1ZV3"},
			Interests:        []string{"tech", "smart home", "music", "gadgets"},
			Categories:       []string{"electronics", "tech", "audio"},
			Colors:           []string{"charcoal", "glacier white", "deep sea blue"},
			Brands:           []string{"Amazon"},
		},
		AffiliateBase: "https://www.amazon.com/dp/B0D1XD1ZV3",
	},
	{
		Product: model.NormalizedProduct{
			ID:               "amazon_B0BSN5ZMBC",
			Store:            model.StoreAmazon,
			Title:            "Fujifilm Instax Mini 12 Instant Camera Bundle",
			DescriptionShort: "Compact instant camera bundle with selfie mirror and film for on-the-go memories.",
			Image:            "https://m.media-amazon.com/images/I/61LMWQ9qIhL._AC_SL1500_.jpg",
			Price:            model.Price{Value: 79.95, Currency: "USD"},
			Rating:           model.Rating{Value: 4.8, Count: 31000},
			Badges:           []string{"prime_shipping", "bestseller"},
			Raw:              map[string]any{"asin": "B0BSN5ZMBC"},
			Interests:        []string{"photography", "travel", "creativity"},
			Categories:       []string{"electronics", "cameras"},
			Colors:           []string{"pastel blue", "blue"},
			Brands:           []string{"Fujifilm"},
		},
		AffiliateBase: "https://www.amazon.com/dp/B0BSN5ZMBC",
	},
	{
		Product: model.NormalizedProduct{
			ID:               "amazon_B0B45XQH8L",
			Store:            model.StoreAmazon,
			Title:            "Therabody Theragun Mini 2.0 Handheld Massager",
			DescriptionShort: "Portable deep-tissue massage gun for muscle recovery with three attachments.",
			Image:            "https://m.media-amazon.com/images/I/51GfBxWSPAL._AC_SL1500_.jpg",
			Price:            model.Price{Value: 199.0, Currency: "USD"},
			Rating:           model.Rating{Value: 4.7, Count: 6400},
			Badges:           []string{"premium", "prime_shipping"},
			Raw:              map[string]any{"asin": "B0B45XQH8L"},
			Interests:        []string{"fitness", "wellness", "recovery"},
			Categories:       []string{"health", "fitness"},
			Colors:           []string{"black"},
			Brands:           []string{"Theragun", "Therabody"},
		},
		AffiliateBase: "https://www.amazon.com/dp/B0B45XQH8L",
	},
	{
		Product: model.NormalizedProduct{
			ID:               "amazon_B07Z5QF7TB",
			Store:            model.StoreAmazon,
			Title:            "Ember Temperature Control Smart Mug 2",
			DescriptionShort: "Smart ceramic mug that maintains drink temperature via app control for 80 minutes.",
			Image:            "https://m.media-amazon.com/images/I/61Uv9KMT9zL._AC_SL1500_.jpg",
			Price:            model.Price{Value: 149.95, Currency: "USD"},
			Rating:           model.Rating{Value: 4.6, Count: 11000},
			Badges:           []string{"smart_home", "giftable"},
			Raw:              map[string]any{"asin": "B07Z5QF7TB"},
			Interests:        []string{"coffee", "tea", "gadgets", "office"},
			Categories:       []string{"kitchen", "tech"},
			Colors:           []string{"black", "white"},
			Brands:           []string{"Ember"},
		},
		AffiliateBase: "https://www.amazon.com/dp/B07Z5QF7TB",
	},
	{
		Product: model.NormalizedProduct{
			ID:               "amazon_B0752XRB5F",
			Store:            model.StoreAmazon,
			Title:            "Kindle Paperwhite (8 GB) – 6.8\" Display",
			DescriptionShort: "Waterproof e-reader with adjustable warm light and weeks of battery life.",
			Image:            "https://m.media-amazon.com/images/I/61Brxj2iFtL._AC_SL1000_.jpg",
			Price:            model.Price{Value: 149.99, Currency: "USD"},
			Rating:           model.Rating{Value: 4.7, Count: 95000},
			Badges:           []string{"bestseller", "prime_shipping"},
			Raw:              map[string]any{"asin": "B0752XRB5F"},
			Interests:        []string{"reading", "books", "tech"},
			Categories:       []string{"electronics", "ebooks"},
			Colors:           []string{"black"},
			Brands:           []string{"Amazon"},
		},
		AffiliateBase: "https://www.amazon.com/dp/B0752XRB5F",
	},
	{
		Product: model.NormalizedProduct{
			ID:               "amazon_B0BDJ7FGDM",
			Store:            model.StoreAmazon,
			Title:            "Apple AirTag",
			DescriptionShort: "Precision tracking device that works with Find My network to locate your belongings.",
			Image:            "https://m.media-amazon.com/images/I/71COpV7HpJL._AC_SL1500_.jpg",
			Price:            model.Price{Value: 29.00, Currency: "USD"},
			Rating:           model.Rating{Value: 4.7, Count: 320000},
			Badges:           []string{"bestseller", "prime_shipping"},
			Raw:              map[string]any{"asin": "B0BDJ7FGDM"},
			Interests:        []string{"tech", "tracking", "organization", "gadgets"},
			Categories:       []string{"electronics", "tech", "accessories"},
			Colors:           []string{"white", "silver"},
			Brands:           []string{"Apple"},
		},
		AffiliateBase: "https://www.amazon.com/dp/B0BDJ7FGDM",
	},
	{
		Product: model.NormalizedProduct{
			ID:               "amazon_B0CX59VH6C",
			Store:            model.StoreAmazon,
			Title:            "Anker Portable Charger 10000mAh Power Bank",
			DescriptionShort: "Ultra-compact power bank with dual USB ports and fast charging for phones and tablets.",
			Image:            "https://m.media-amazon.com/images/I/51fWKGEt1UL._AC_SL1500_.jpg",
			Price:            model.Price{Value: 19.99, Currency: "USD"},
			Rating:           model.Rating{Value: 4.6, Count: 45000},
			Badges:           []string{"prime_shipping", "compact"},
			Raw:              map[string]any{"asin": "B0CX59VH6C"},
			Interests:        []string{"tech", "travel", "charging", "gadgets"},
			Categories:       []string{"electronics", "tech", "accessories"},
			Colors:           []string{"black"},
			Brands:           []string{"Anker"},
		},
		AffiliateBase: "https://www.amazon.com/dp/B0CX59VH6C",
	},
	{
		Product: model.NormalizedProduct{
			ID:               "amazon_B0B7CPSSJZ",
			Store:            model.StoreAmazon,
			Title:            "JBL Clip 4 Portable Bluetooth Speaker",
			DescriptionShort: "Ultra-portable waterproof speaker with integrated carabiner and 10 hours of playtime.",
			Image:            "https://m.media-amazon.com/images/I/71Ou8CuFVlL._AC_SL1500_.jpg",
			Price:            model.Price{Value: 49.95, Currency: "USD"},
			Rating:           model.Rating{Value: 4.8, Count: 28000},
			Badges:           []string{"waterproof", "prime_shipping", "portable"},
			Raw:              map[string]any{"asin": "B0B7CPSSJZ"},
			Interests:        []string{"music", "outdoor", "tech", "travel"},
			Categories:       []string{"electronics", "audio", "tech"},
			Colors:           []string{"black", "blue", "red", "pink"},
			Brands:           []string{"JBL"},
		},
		AffiliateBase: "https://www.amazon.com/dp/B0B7CPSSJZ",
	},
	{
		Product: model.NormalizedProduct{
			ID:               "amazon_B09HS8DL8K",
			Store:            model.StoreAmazon,
			Title:            "Kindle Paperwhite (16 GB)",
			DescriptionShort: "Waterproof e-reader with 6.8-inch display, adjustable warm light, and weeks of battery.",
			Image:            "https://m.media-amazon.com/images/I/51QCk82iGsL._AC_SL1000_.jpg",
			Price:            model.Price{Value: 139.99, Currency: "USD"},
			Rating:           model.Rating{Value: 4.6, Count: 47000},
			Badges:           []string{"bestseller", "prime_shipping", "waterproof"},
			Raw:              map[string]any{"asin": "B09HS8DL8K"},
			Interests:        []string{"reading", "books", "tech"},
			Categories:       []string{"electronics", "ebooks", "tech"},
			Colors:           []string{"black"},
			Brands:           []string{"Amazon"},
		},
		AffiliateBase: "https://www.amazon.com/dp/B09HS8DL8K",
	},
	{
		Product: model.NormalizedProduct{
			ID:               "amazon_B0BKTWHGQ4",
			Store:            model.StoreAmazon,
			Title:            "LEGO Icons Wildflower Bouquet Building Set",
			DescriptionShort: "Build-your-own flower bouquet with adjustable stems and vibrant botanical details.",
			Image:            "https://m.media-amazon.com/images/I/81zP5JG2gzL._AC_SL1500_.jpg",
			Price:            model.Price{Value: 47.99, Currency: "USD"},
			Rating:           model.Rating{Value: 4.9, Count: 18000},
			Badges:           []string{"giftable", "bestseller", "prime_shipping"},
			Raw:              map[string]any{"asin": "B0BKTWHGQ4"},
			Interests:        []string{"diy", "decor", "plants", "creativity"},
			Categories:       []string{"home", "decor", "diy"},
			Colors:           []string{"multicolor", "green", "pink", "orange"},
			Brands:           []string{"LEGO"},
		},
		AffiliateBase: "https://www.amazon.com/dp/B0BKTWHGQ4",
	},
	{
		Product: model.NormalizedProduct{
			ID:               "amazon_B09B8RXYM5",
			Store:            model.StoreAmazon,
			Title:            "Tile Mate (2022) Bluetooth Tracker",
			DescriptionShort: "Find your keys, wallet, or bag with this water-resistant Bluetooth tracker with 250 ft range.",
			Image:            "https://m.media-amazon.com/images/I/61AQ5slhmxL._AC_SL1500_.jpg",
			Price:            model.Price{Value: 24.99, Currency: "USD"},
			Rating:           model.Rating{Value: 4.5, Count: 71000},
			Badges:           []string{"prime_shipping", "bestseller"},
			Raw:              map[string]any{"asin": "B09B8RXYM5"},
			Interests:        []string{"tech", "organization", "tracking", "gadgets"},
			Categories:       []string{"electronics", "tech", "accessories"},
			Colors:           []string{"black", "white"},
			Brands:           []string{"Tile"},
		},
		AffiliateBase: "https://www.amazon.com/dp/B09B8RXYM5",
	},
	{
		Product: model.NormalizedProduct{
			ID:               "amazon_B0CVXQJV47",
			Store:            model.StoreAmazon,
			Title:            "Wireless Earbuds Bluetooth Headphones 40H Playtime",
			DescriptionShort: "True wireless earbuds with LED display, 40H playtime, and waterproof design.",
			Image:            "https://m.media-amazon.com/images/I/61SLv9wsNzL._AC_SL1500_.jpg",
			Price:            model.Price{Value: 29.99, Currency: "USD"},
			Rating:           model.Rating{Value: 4.4, Count: 18000},
			Badges:           []string{"prime_shipping", "waterproof"},
			Raw:              map[string]any{"asin": "B0CVXQJV47"},
			Interests:        []string{"music", "tech", "fitness", "audio"},
			Categories:       []string{"electronics", "audio", "tech"},
			Colors:           []string{"black", "white"},
			Brands:           []string{"Generic"},
		},
		AffiliateBase: "https://www.amazon.com/dp/B0CVXQJV47",
	},
	{
		Product: model.NormalizedProduct{
			ID:               "amazon_B0D83M8WS7",
			Store:            model.StoreAmazon,
			Title:            "Logitech MX Master 3S Wireless Mouse",
			DescriptionShort: "Premium wireless mouse with ultra-quiet clicks, 8K DPI sensor, and multi-device support.",
			Image:            "https://m.media-amazon.com/images/I/61ni3t1ryQL._AC_SL1500_.jpg",
			Price:            model.Price{Value: 99.99, Currency: "USD"},
			Rating:           model.Rating{Value: 4.7, Count: 15000},
			Badges:           []string{"premium", "prime_shipping"},
			Raw:              map[string]any{"asin": "B0D83M8WS7"},
			Interests:        []string{"tech", "work", "productivity", "gaming"},
			Categories:       []string{"electronics", "tech", "accessories"},
			Colors:           []string{"black", "pale grey"},
			Brands:           []string{"Logitech"},
		},
		AffiliateBase: "https://www.amazon.com/dp/B0D83M8WS7",
	},
	{
		Product: model.NormalizedProduct{
			ID:               "amazon_B0CHX9CY7C",
			Store:            model.StoreAmazon,
			Title:            "Govee RGBIC LED Strip Lights 50ft",
			DescriptionShort: "Smart LED lights with app control, music sync, and 16 million colors for room ambiance.",
			Image:            "https://m.media-amazon.com/images/I/71rRGPN9cPL._AC_SL1500_.jpg",
			Price:            model.Price{Value: 99.99, Currency: "USD"},
			Rating:           model.Rating{Value: 4.5, Count: 23000},
			Badges:           []string{"smart_home", "prime_shipping"},
			Raw:              map[string]any{"asin": "B0CHX9CY7C"},
			Interests:        []string{"decor", "tech", "lighting", "gaming"},
			Categories:       []string{"home", "lighting", "tech"},
			Colors:           []string{"rgb", "multicolor", "black"},
			Brands:           []string{"Govee"},
		},
		AffiliateBase: "https://www.amazon.com/dp/B0CHX9CY7C",
	},
	{
		Product: model.NormalizedProduct{
			ID:               "amazon_B0BSHF6XFB",
			Store:            model.StoreAmazon,
			Title:            "Fujifilm Instax Mini 12 Instant Camera",
			DescriptionShort: "Easy-to-use instant camera with automatic exposure and close-up mode for fun photos.",
			Image:            "https://m.media-amazon.com/images/I/71gWNNLFonL._AC_SL1500_.jpg",
			Price:            model.Price{Value: 69.95, Currency: "USD"},
			Rating:           model.Rating{Value: 4.8, Count: 12000},
			Badges:           []string{"bestseller", "prime_shipping", "giftable"},
			Raw:              map[string]any{"asin": "B0BSHF6XFB"},
			Interests:        []string{"photography", "creativity", "travel", "memories"},
			Categories:       []string{"electronics", "cameras"},
			Colors:           []string{"mint green", "lilac purple", "sky blue", "clay white"},
			Brands:           []string{"Fujifilm"},
		},
		AffiliateBase: "https://www.amazon.com/dp/B0BSHF6XFB",
	},
}

// AliExpress is the curated AliExpress catalog.
var AliExpress = []Item{
	{
		Product: model.NormalizedProduct{
			ID:               "aliexpress_1005005906552721",
			Store:            model.StoreAliExpress,
			Title:            "Retro Mechanical Wireless Keyboard with RGB Backlight",
			DescriptionShort: "Typewriter-style bluetooth keyboard with swappable keycaps and ambient RGB lighting.",
			Image:            "https://ae01.alicdn.com/kf/S94e1f1f303234bcc833d9c8f27cd4a1cF.jpg",
			Price:            model.Price{Value: 68.5, Currency: "USD"},
			Rating:           model.Rating{Value: 4.8, Count: 890},
			Badges:           []string{"fast_shipping", "trending"},
			Raw:              map[string]any{"sku": "1005005906552721"},
			Interests:        []string{"gaming", "aesthetics", "workspace"},
			Categories:       []string{"electronics", "peripherals"},
			Colors:           []string{"pink", "blue", "white"},
			Brands:           []string{"Ziyou Lang"},
		},
		AffiliateBase: "https://www.aliexpress.com/item/1005005906552721.html",
	},
	{
		Product: model.NormalizedProduct{
			ID:               "aliexpress_1005006102345387",
			Store:            model.StoreAliExpress,
			Title:            "Smart Sunset Projection Lamp",
			DescriptionShort: "Rotating LED ambient lamp casting sunset gradients for cozy rooms and content creation.",
			Image:            "https://ae01.alicdn.com/kf/S668e2f69118742729b137bc8d1feb7979.jpg",
			Price:            model.Price{Value: 23.99, Currency: "USD"},
			Rating:           model.Rating{Value: 4.9, Count: 3120},
			Badges:           []string{"budget_friendly", "fast_shipping"},
			Raw:              map[string]any{"sku": "1005006102345387"},
			Interests:        []string{"decor", "photography", "lighting"},
			Categories:       []string{"home", "lighting"},
			Colors:           []string{"orange", "gold"},
			Brands:           []string{"VOCALSKY"},
		},
		AffiliateBase: "https://www.aliexpress.com/item/1005006102345387.html",
	},
	{
		Product: model.NormalizedProduct{
			ID:               "aliexpress_1005006048117780",
			Store:            model.StoreAliExpress,
			Title:            "Portable Matcha Tea Set with Whisk",
			DescriptionShort: "Travel-friendly matcha kit featuring ceramic bowl, whisk, and scoop in protective case.",
			Image:            "https://ae01.alicdn.com/kf/S8f0b086f66b44041a19d5ac8ec62de88A.jpg",
			Price:            model.Price{Value: 34.5, Currency: "USD"},
			Rating:           model.Rating{Value: 4.7, Count: 540},
			Badges:           []string{"artisan", "giftable"},
			Raw:              map[string]any{"sku": "1005006048117780"},
			Interests:        []string{"tea", "wellness", "travel"},
			Categories:       []string{"kitchen", "lifestyle"},
			Colors:           []string{"green", "brown"},
			Brands:           []string{"Teanagoo"},
		},
		AffiliateBase: "https://www.aliexpress.com/item/1005006048117780.html",
	},
	{
		Product: model.NormalizedProduct{
			ID:               "aliexpress_1005005970073315",
			Store:            model.StoreAliExpress,
			Title:            "DIY Terrarium Kit with LED Wooden Base",
			DescriptionShort: "Complete terrarium kit including glass dome, moss, and LED base for ambient glow.",
			Image:            "https://ae01.alicdn.com/kf/S47ed7f56948b41f9a2a06ebc06c5ba04g.jpg",
			Price:            model.Price{Value: 42.75, Currency: "USD"},
			Rating:           model.Rating{Value: 4.8, Count: 210},
			Badges:           []string{"eco_friendly", "handmade_style"},
			Raw:              map[string]any{"sku": "1005005970073315"},
			Interests:        []string{"plants", "diy", "decor"},
			Categories:       []string{"home", "decor"},
			Colors:           []string{"green", "warm white"},
		},
		AffiliateBase: "https://www.aliexpress.com/item/1005005970073315.html",
	},
	{
		Product: model.NormalizedProduct{
			ID:               "aliexpress_1005006004736656",
			Store:            model.StoreAliExpress,
			Title:            "Minimalist Magnetic Levitation Planter",
			DescriptionShort: "Floating planter that rotates gently, ideal for succulents and modern desks.",
			Image:            "https://ae01.alicdn.com/kf/S9f83b48720504d5c9b6316c69e04829cQ.jpg",
			Price:            model.Price{Value: 98.0, Currency: "USD"},
			Rating:           model.Rating{Value: 4.6, Count: 430},
			Badges:           []string{"premium", "wow_factor"},
			Raw:              map[string]any{"sku": "1005006004736656"},
			Interests:        []string{"tech", "decor", "plants"},
			Categories:       []string{"home", "tech"},
			Colors:           []string{"white", "wood"},
		},
		AffiliateBase: "https://www.aliexpress.com/item/1005006004736656.html",
	},
}

// Shein is the curated SHEIN catalog.
var Shein = []Item{
	{
		Product: model.NormalizedProduct{
			ID:               "shein_sw23060112328",
			Store:            model.StoreShein,
			Title:            "SHEIN EZwear Colorblock Hoodie Set",
			DescriptionShort: "Cozy colorblock hoodie and jogger set with relaxed fit and soft fleece interior.",
			Image:            "https://img.ltwebstatic.com/images3_pi/2023/07/14/1689324526c7bcb35dbe62d6f400d0dc1d3523fcbb.webp",
			Price:            model.Price{Value: 32.0, Currency: "USD"},
			Rating:           model.Rating{Value: 4.7, Count: 9200},
			Badges:           []string{"loungewear", "bestseller"},
			Raw:              map[string]any{"sku": "sw23060112328"},
			Interests:        []string{"fashion", "comfort", "athleisure"},
			Categories:       []string{"fashion", "loungewear"},
			Colors:           []string{"pink", "beige"},
			Brands:           []string{"SHEIN"},
		},
		AffiliateBase: "https://us.shein.com/SHEIN-EZwear-Colorblock-Hoodie-Set-p-25889337.html",
	},
	{
		Product: model.NormalizedProduct{
			ID:               "shein_sa2205272550230826",
			Store:            model.StoreShein,
			Title:            "SHEIN Home Aromatherapy Diffuser",
			DescriptionShort: "Minimal ceramic essential oil diffuser with auto-off safety and warm lighting.",
			Image:            "https://img.ltwebstatic.com/images3_pi/2022/09/20/16636603132fbe4fa6102a50637e2df8f4b2272a3e.webp",
			Price:            model.Price{Value: 28.5, Currency: "USD"},
			Rating:           model.Rating{Value: 4.8, Count: 3100},
			Badges:           []string{"home", "wellness"},
			Raw:              map[string]any{"sku": "sa2205272550230826"},
			Interests:        []string{"wellness", "home", "aromatherapy"},
			Categories:       []string{"home", "wellness"},
			Colors:           []string{"white", "wood"},
			Brands:           []string{"SHEIN"},
		},
		AffiliateBase: "https://us.shein.com/Aromatherapy-Diffuser-p-9416601.html",
	},
	{
		Product: model.NormalizedProduct{
			ID:               "shein_sw2108059872568526",
			Store:            model.StoreShein,
			Title:            "DAZY Rib-Knit Mock Neck Sweater",
			DescriptionShort: "Slim rib-knit mock neck sweater ideal for layering and capsule wardrobes.",
			Image:            "https://img.ltwebstatic.com/images3_pi/2021/09/02/16305367499f639a6a2c94fe860b13ffa6045aac89.webp",
			Price:            model.Price{Value: 21.99, Currency: "USD"},
			Rating:           model.Rating{Value: 4.9, Count: 12800},
			Badges:           []string{"wardrobe_essential", "budget_friendly"},
			Raw:              map[string]any{"sku": "sw2108059872568526"},
			Interests:        []string{"fashion", "minimalist", "office"},
			Categories:       []string{"fashion", "tops"},
			Colors:           []string{"cream", "beige"},
			Brands:           []string{"DAZY"},
		},
		AffiliateBase: "https://us.shein.com/DAZY-Rib-Knit-Mock-Neck-Sweater-p-20066766.html",
	},
	{
		Product: model.NormalizedProduct{
			ID:               "shein_sr2303164838214621",
			Store:            model.StoreShein,
			Title:            "SHEIN LUNE Crystal Statement Earrings",
			DescriptionShort: "Gold-tone crystal drop earrings adding sparkle for special occasions.",
			Image:            "https://img.ltwebstatic.com/images3_pi/2023/04/14/1681465746c1281870e7bd85e8b4785905a9d3f31f.webp",
			Price:            model.Price{Value: 12.5, Currency: "USD"},
			Rating:           model.Rating{Value: 4.6, Count: 5800},
			Badges:           []string{"occasion", "accessories"},
			Raw:              map[string]any{"sku": "sr2303164838214621"},
			Interests:        []string{"fashion", "jewelry", "occasion"},
			Categories:       []string{"fashion", "accessories"},
			Colors:           []string{"gold"},
			Brands:           []string{"SHEIN"},
		},
		AffiliateBase: "https://us.shein.com/SHEIN-LUNE-Crystal-Earrings-p-21096792.html",
	},
	{
		Product: model.NormalizedProduct{
			ID:               "shein_sm2107141758280994",
			Store:            model.StoreShein,
			Title:            "SHEIN Studio Minimalist Nylon Backpack",
			DescriptionShort: "Water-resistant nylon backpack with laptop sleeve and multiple organizer pockets.",
			Image:            "https://img.ltwebstatic.com/images3_pi/2021/08/21/16295119666b74fd9f5bff031f12f9545f51a54061.webp",
			Price:            model.Price{Value: 39.0, Currency: "USD"},
			Rating:           model.Rating{Value: 4.7, Count: 2200},
			Badges:           []string{"travel", "giftable"},
			Raw:              map[string]any{"sku": "sm2107141758280994"},
			Interests:        []string{"travel", "commuting", "tech"},
			Categories:       []string{"fashion", "bags"},
			Colors:           []string{"black"},
			Brands:           []string{"SHEIN"},
		},
		AffiliateBase: "https://us.shein.com/SHEIN-Studio-Minimalist-Backpack-p-21036332.html",
	},
}
