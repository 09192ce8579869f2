package catalog

const (
	// StorageKey is the single key the catalog blob lives under.
	StorageKey = "tienda_app_data"

	DefaultStoreID = "sachacacao"
)

// Defaults returns a fresh copy of the built-in catalog.
func Defaults() Catalog {
	return builtin().Clone()
}

func builtin() Catalog {
	return Catalog{
		"sachacacao": {
			ID:           "sachacacao",
			Name:         "Sacha Cacao",
			SectionTitle: "Nuestra Cosecha",
			Theme: Theme{
				ThemePrimary: "#5D4037", ThemePrimaryLight: "#efebe9", ThemeAccent: "#c59d5f",
				ThemeDarkText: "#3E2723", ThemeLightText: "#795548", ThemeBackground: "#FDFBF7",
				ThemeSurface: "#FFFFFF", ThemeBorder: "#D7CCC8",
			},
			HeroBanner: HeroBanner{
				ImageURL: "https://images.pexels.com/photos/4099355/pexels-photo-4099355.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
				Title:    "Sacha Cacao",
				Subtitle: "Del grano a tu corazón. Descubre el sabor auténtico del cacao artesanal.",
			},
			PaymentInfo: PaymentInfo{Phone: "987654321", Name: "JUAN PEREZ", WhatsApp: "51987654321"},
			ChatInstruction: "Eres un asistente virtual de Sacha Cacao, una tienda especializada en productos artesanales de cacao. " +
				"Eres amable, conocedor y apasionado por el cacao. Ayuda a los clientes a conocer los productos, sus beneficios, y a realizar sus compras.",
			Products: []Product{
				{ID: 1, Name: "Cacao en Polvo 100% Orgánico", Description: "Nuestro cacao en polvo puro es ideal para repostería, bebidas calientes o batidos. Sabor intenso y sin aditivos.", Price: 85.00, Image: "https://images.pexels.com/photos/4109943/pexels-photo-4109943.jpeg?auto=compress&cs=tinysrgb&w=600"},
				{ID: 2, Name: "Cacao Crudo Criollo x Kg", Description: "Granos de cacao criollo, la variedad más fina y aromática. Perfectos para tostar en casa o para chocolatería artesanal.", Price: 50.00, Image: "https://images.pexels.com/photos/8977717/pexels-photo-8977717.jpeg?auto=compress&cs=tinysrgb&w=600"},
				{ID: 3, Name: "Cacao Tostado en Grano", Description: "Granos de cacao tostados a la perfección para resaltar sus notas de sabor. Un snack energético y delicioso.", Price: 70.00, Image: "https://images.pexels.com/photos/7350796/pexels-photo-7350796.jpeg?auto=compress&cs=tinysrgb&w=600"},
				{ID: 4, Name: "Pasta Pura de Cacao x Kg", Description: "100% cacao molido, la base para cualquier creación de chocolate. Sabor profundo y auténtico del grano.", Price: 90.00, Image: "https://images.pexels.com/photos/6068997/pexels-photo-6068997.jpeg?auto=compress&cs=tinysrgb&w=600"},
				{ID: 5, Name: "Nibs de Cacao Tostado", Description: "Trozos de granos de cacao tostado y pelado. Añade un toque crujiente y chocolatoso a tus desayunos y postres.", Price: 90.00, Image: "https://images.pexels.com/photos/6112423/pexels-photo-6112423.jpeg?auto=compress&cs=tinysrgb&w=600"},
				{ID: 6, Name: "Manjar de Cacao 150g", Description: "Deliciosa y untuosa crema de cacao artesanal, endulzada naturalmente. Perfecta para untar o disfrutar a cucharadas.", Price: 15.00, Image: "https://images.pexels.com/photos/2067423/pexels-photo-2067423.jpeg?auto=compress&cs=tinysrgb&w=600"},
				{ID: 7, Name: "Cascarilla de Cacao", Description: "La cáscara del grano de cacao, ideal para preparar una infusión aromática con notas a chocolate y propiedades relajantes.", Price: 5.00, Image: "https://upload.wikimedia.org/wikipedia/commons/thumb/e/ef/Cocoa_bean_husks.jpg/640px-Cocoa_bean_husks.jpg"},
				{ID: 8, Name: "Cóctel de Cacao", Description: "Exquisito licor de cacao artesanal, perfecto para disfrutar solo, en cócteles o como un toque especial en postres.", Price: 50.00, Image: "https://images.pexels.com/photos/2788775/pexels-photo-2788775.jpeg?auto=compress&cs=tinysrgb&w=600"},
			},
		},
		"cafedelvalle": {
			ID:           "cafedelvalle",
			Name:         "Café del Valle",
			SectionTitle: "Nuestros Orígenes",
			Theme: Theme{
				ThemePrimary: "#4E342E", ThemePrimaryLight: "#D7CCC8", ThemeAccent: "#FFC107",
				ThemeDarkText: "#3E2723", ThemeLightText: "#6D4C41", ThemeBackground: "#FBF9F6",
				ThemeSurface: "#FFFFFF", ThemeBorder: "#BCAAA4",
			},
			HeroBanner: HeroBanner{
				ImageURL: "https://images.pexels.com/photos/312418/pexels-photo-312418.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
				Title:    "Café del Valle",
				Subtitle: "El aroma que despierta tus sentidos.",
			},
			PaymentInfo: PaymentInfo{Phone: "999888777", Name: "MARIA GARCIA", WhatsApp: "51999888777"},
			ChatInstruction: "Eres un barista experto de Café del Valle, una tienda de café de especialidad. " +
				"Conoces todo sobre el origen, tostado y métodos de preparación. Ayuda a los clientes a elegir el café perfecto para ellos.",
			Products: []Product{
				{ID: 1, Name: "Café Geisha Tostado Medio", Description: "Notas florales de jazmín, bergamota y frutos tropicales. Acidez brillante y cuerpo sedoso.", Price: 95.00, Image: "https://images.pexels.com/photos/4109744/pexels-photo-4109744.jpeg?auto=compress&cs=tinysrgb&w=600"},
				{ID: 2, Name: "Café Bourbon Lavado x Kg", Description: "Un clásico balanceado con notas a chocolate, caramelo y nuez. Ideal para espresso o filtrado.", Price: 60.00, Image: "https://images.pexels.com/photos/3733005/pexels-photo-3733005.jpeg?auto=compress&cs=tinysrgb&w=600"},
				{ID: 3, Name: "Blend de la Casa", Description: "Mezcla perfecta de granos de la región para una taza consistente y llena de sabor. Perfil achocolatado.", Price: 45.00, Image: "https://images.pexels.com/photos/14831349/pexels-photo-14831349.jpeg?auto=compress&cs=tinysrgb&w=600"},
				{ID: 4, Name: "Café de Origen Único (Honey)", Description: "Proceso honey que resalta el dulzor natural del grano. Notas a miel, frutos rojos y panela.", Price: 75.00, Image: "https://images.pexels.com/photos/10708573/pexels-photo-10708573.jpeg?auto=compress&cs=tinysrgb&w=600"},
			},
		},
	}
}
