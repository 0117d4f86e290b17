package i18n

type entry map[Locale]string

// 画面文言。キーはフロントと共通。
var messages = map[string]entry{
	// Header
	"nav.products": {EN: "Products", DE: "Produkte", FR: "Produits"},
	"nav.about":    {EN: "About Us", DE: "Über uns", FR: "À propos"},
	"nav.contact":  {EN: "Contact", DE: "Kontakt", FR: "Contact"},

	// Hero
	"hero.badge":        {EN: "Exclusive Collection", DE: "Exklusive Kollektion", FR: "Collection Exclusive"},
	"hero.title1":       {EN: "Our Best", DE: "Unsere besten", FR: "Nos meilleurs"},
	"hero.title2":       {EN: "Products", DE: "Produkte", FR: "Produits"},
	"hero.title3":       {EN: "in One Place", DE: "an einem Ort", FR: "au même endroit"},
	"hero.subtitle":     {EN: "Discover a carefully curated collection of premium products, crafted for those who value quality and uniqueness", DE: "Entdecken Sie eine sorgfältig kuratierte Kollektion von Premium-Produkten, geschaffen für diejenigen, die Qualität und Einzigartigkeit schätzen", FR: "Découvrez une collection soigneusement sélectionnée de produits premium, conçue pour ceux qui apprécient la qualité et l'unicité"},
	"hero.viewProducts": {EN: "View Products", DE: "Produkte ansehen", FR: "Voir les produits"},
	"hero.learnMore":    {EN: "Learn More", DE: "Mehr erfahren", FR: "En savoir plus"},

	// Products
	"products.title":       {EN: "Our Products", DE: "Unsere Produkte", FR: "Nos Produits"},
	"products.subtitle":    {EN: "Carefully selected products that will help you achieve your goals", DE: "Sorgfältig ausgewählte Produkte, die Ihnen helfen, Ihre Ziele zu erreichen", FR: "Des produits soigneusement sélectionnés qui vous aideront à atteindre vos objectifs"},
	"products.addToCart":   {EN: "Add to Cart", DE: "In den Warenkorb", FR: "Ajouter au panier"},
	"products.moreDetails": {EN: "More Details", DE: "Mehr Details", FR: "Plus de détails"},
	"products.digital":     {EN: "Digital Product", DE: "Digitales Produkt", FR: "Produit numérique"},
	"products.service":     {EN: "Service", DE: "Dienstleistung", FR: "Service"},

	// About
	"about.title":         {EN: "About Us", DE: "Über uns", FR: "À propos de nous"},
	"about.subtitle":      {EN: "We are a team of experts dedicated to providing you with the best digital products and services", DE: "Wir sind ein Team von Experten, das sich der Bereitstellung der besten digitalen Produkte und Dienstleistungen widmet", FR: "Nous sommes une équipe d'experts dédiée à vous fournir les meilleurs produits et services numériques"},
	"about.mission.title": {EN: "Our Mission", DE: "Unsere Mission", FR: "Notre Mission"},
	"about.mission.text":  {EN: "To empower individuals and businesses with high-quality digital tools and knowledge that drive growth and success.", DE: "Menschen und Unternehmen mit hochwertigen digitalen Tools und Wissen zu befähigen, die Wachstum und Erfolg fördern.", FR: "Donner aux individus et aux entreprises les moyens d'agir grâce à des outils numériques de haute qualité et des connaissances qui favorisent la croissance et le succès."},
	"about.quality.title": {EN: "Quality First", DE: "Qualität zuerst", FR: "La qualité d'abord"},
	"about.quality.text":  {EN: "Every product in our collection is thoroughly tested and refined to ensure it meets the highest standards of excellence.", DE: "Jedes Produkt in unserer Kollektion wird gründlich getestet und verfeinert, um höchste Exzellenzstandards zu erfüllen.", FR: "Chaque produit de notre collection est soigneusement testé et affiné pour garantir qu'il répond aux normes d'excellence les plus élevées."},
	"about.support.title": {EN: "24/7 Support", DE: "24/7 Support", FR: "Support 24/7"},
	"about.support.text":  {EN: "Our dedicated support team is always here to help you get the most out of your purchase.", DE: "Unser engagiertes Support-Team ist immer hier, um Ihnen zu helfen, das Beste aus Ihrem Kauf herauszuholen.", FR: "Notre équipe de support dédiée est toujours là pour vous aider à tirer le meilleur parti de votre achat."},

	// Cart
	"cart.title":         {EN: "Your Cart", DE: "Ihr Warenkorb", FR: "Votre panier"},
	"cart.empty":         {EN: "Your cart is empty", DE: "Ihr Warenkorb ist leer", FR: "Votre panier est vide"},
	"cart.emptySubtitle": {EN: "Add some products to get started", DE: "Fügen Sie Produkte hinzu, um zu beginnen", FR: "Ajoutez des produits pour commencer"},
	"cart.viewProducts":  {EN: "View Products", DE: "Produkte ansehen", FR: "Voir les produits"},
	"cart.total":         {EN: "Total", DE: "Gesamt", FR: "Total"},
	"cart.checkout":      {EN: "Checkout", DE: "Zur Kasse", FR: "Commander"},

	// Checkout
	"checkout.title":              {EN: "Checkout", DE: "Kasse", FR: "Paiement"},
	"checkout.yourOrder":          {EN: "Your Order", DE: "Ihre Bestellung", FR: "Votre commande"},
	"checkout.total":              {EN: "Total", DE: "Gesamt", FR: "Total"},
	"checkout.name":               {EN: "Name", DE: "Name", FR: "Nom"},
	"checkout.namePlaceholder":    {EN: "Your name", DE: "Ihr Name", FR: "Votre nom"},
	"checkout.email":              {EN: "Email", DE: "E-Mail", FR: "E-mail"},
	"checkout.phone":              {EN: "Phone", DE: "Telefon", FR: "Téléphone"},
	"checkout.address":            {EN: "Shipping Address", DE: "Lieferadresse", FR: "Adresse de livraison"},
	"checkout.addressPlaceholder": {EN: "City, street, building", DE: "Stadt, Straße, Gebäude", FR: "Ville, rue, bâtiment"},
	"checkout.pay":                {EN: "Pay", DE: "Bezahlen", FR: "Payer"},
	"checkout.terms":              {EN: "By clicking the button, you agree to the terms of offer", DE: "Mit dem Klicken auf die Schaltfläche stimmen Sie den Angebotsbedingungen zu", FR: "En cliquant sur le bouton, vous acceptez les conditions de l'offre"},
	"checkout.success":            {EN: "Order placed successfully!", DE: "Bestellung erfolgreich aufgegeben!", FR: "Commande passée avec succès!"},
	"checkout.successMsg":         {EN: "Confirmation will be sent to your email", DE: "Bestätigung wird an Ihre E-Mail gesendet", FR: "La confirmation sera envoyée à votre e-mail"},
	"checkout.error":              {EN: "Error", DE: "Fehler", FR: "Erreur"},
	"checkout.fillRequired":       {EN: "Please fill in the required fields", DE: "Bitte füllen Sie die erforderlichen Felder aus", FR: "Veuillez remplir les champs obligatoires"},
	"checkout.paymentFailed":      {EN: "Payment failed. Please try again", DE: "Zahlung fehlgeschlagen. Bitte versuchen Sie es erneut", FR: "Le paiement a échoué. Veuillez réessayer"},
	"checkout.orderPlaced":        {EN: "Order placed!", DE: "Bestellung aufgegeben!", FR: "Commande passée!"},
	"checkout.confirmationSent":   {EN: "Confirmation sent to your email", DE: "Bestätigung an Ihre E-Mail gesendet", FR: "Confirmation envoyée à votre e-mail"},

	// Footer
	"footer.description": {EN: "Premium digital products for those who value quality and uniqueness.", DE: "Premium digitale Produkte für diejenigen, die Qualität und Einzigartigkeit schätzen.", FR: "Produits numériques premium pour ceux qui apprécient la qualité et l'unicité."},
	"footer.navigation":  {EN: "Navigation", DE: "Navigation", FR: "Navigation"},
	"footer.delivery":    {EN: "Delivery", DE: "Lieferung", FR: "Livraison"},
	"footer.faq":         {EN: "FAQ", DE: "FAQ", FR: "FAQ"},
	"footer.documents":   {EN: "Documents", DE: "Dokumente", FR: "Documents"},
	"footer.privacy":     {EN: "Privacy Policy", DE: "Datenschutzrichtlinie", FR: "Politique de confidentialité"},
	"footer.terms":       {EN: "Terms of Service", DE: "Nutzungsbedingungen", FR: "Conditions d'utilisation"},
	"footer.refund":      {EN: "Refund Policy", DE: "Rückerstattungsrichtlinie", FR: "Politique de remboursement"},
	"footer.contacts":    {EN: "Contacts", DE: "Kontakte", FR: "Contacts"},
	"footer.rights":      {EN: "All rights reserved.", DE: "Alle Rechte vorbehalten.", FR: "Tous droits réservés."},
}

type productEntry struct {
	Name            entry
	Description     entry
	FullDescription entry
}

// 商品IDごとの翻訳
var productMessages = map[string]productEntry{
	"course": {
		Name:            entry{EN: "Online Course", DE: "Online-Kurs", FR: "Cours en ligne"},
		Description:     entry{EN: "Complete course with video lessons and practical exercises", DE: "Kompletter Kurs mit Videolektionen und praktischen Übungen", FR: "Cours complet avec des leçons vidéo et des exercices pratiques"},
		FullDescription: entry{EN: "Comprehensive online course featuring 50+ video lessons, practical exercises, downloadable resources, and lifetime access. Perfect for beginners and intermediate learners looking to master new skills.", DE: "Umfassender Online-Kurs mit über 50 Videolektionen, praktischen Übungen, herunterladbaren Ressourcen und lebenslangem Zugang. Perfekt für Anfänger und Fortgeschrittene, die neue Fähigkeiten erlernen möchten.", FR: "Cours en ligne complet comprenant plus de 50 leçons vidéo, des exercices pratiques, des ressources téléchargeables et un accès à vie. Parfait pour les débutants et les apprenants intermédiaires souhaitant maîtriser de nouvelles compétences."},
	},
	"ebooks": {
		Name:            entry{EN: "E-Book Collection", DE: "E-Book-Sammlung", FR: "Collection d'E-Books"},
		Description:     entry{EN: "Collection of exclusive e-books in PDF format", DE: "Sammlung exklusiver E-Books im PDF-Format", FR: "Collection d'e-books exclusifs au format PDF"},
		FullDescription: entry{EN: "A curated collection of 10 premium e-books covering essential topics. Each book is professionally designed, easy to read, and packed with actionable insights you can implement immediately.", DE: "Eine kuratierte Sammlung von 10 Premium-E-Books zu wesentlichen Themen. Jedes Buch ist professionell gestaltet, leicht zu lesen und voller umsetzbarer Erkenntnisse, die Sie sofort anwenden können.", FR: "Une collection soigneusement sélectionnée de 10 e-books premium couvrant des sujets essentiels. Chaque livre est conçu professionnellement, facile à lire et rempli d'idées exploitables que vous pouvez mettre en œuvre immédiatement."},
	},
	"templates": {
		Name:            entry{EN: "Template Pack", DE: "Vorlagenpaket", FR: "Pack de Modèles"},
		Description:     entry{EN: "Ready-to-use templates for various projects", DE: "Gebrauchsfertige Vorlagen für verschiedene Projekte", FR: "Modèles prêts à l'emploi pour divers projets"},
		FullDescription: entry{EN: "50+ professionally designed templates including presentations, documents, spreadsheets, and more. Save hours of work with these customizable, high-quality templates for any business need.", DE: "Über 50 professionell gestaltete Vorlagen einschließlich Präsentationen, Dokumente, Tabellenkalkulationen und mehr. Sparen Sie Stunden an Arbeit mit diesen anpassbaren, hochwertigen Vorlagen für jeden Geschäftsbedarf.", FR: "Plus de 50 modèles conçus professionnellement, y compris des présentations, des documents, des feuilles de calcul et plus encore. Économisez des heures de travail avec ces modèles personnalisables et de haute qualité pour tout besoin commercial."},
	},
	"consultation": {
		Name:            entry{EN: "Personal Consultation", DE: "Persönliche Beratung", FR: "Consultation Personnelle"},
		Description:     entry{EN: "One-on-one session with an expert", DE: "Einzelsitzung mit einem Experten", FR: "Session individuelle avec un expert"},
		FullDescription: entry{EN: "60-minute personalized consultation session with our expert. Get tailored advice, answers to your questions, and a custom action plan to help you achieve your specific goals.", DE: "60-minütige personalisierte Beratungssitzung mit unserem Experten. Erhalten Sie maßgeschneiderte Ratschläge, Antworten auf Ihre Fragen und einen individuellen Aktionsplan, um Ihre spezifischen Ziele zu erreichen.", FR: "Session de consultation personnalisée de 60 minutes avec notre expert. Obtenez des conseils sur mesure, des réponses à vos questions et un plan d'action personnalisé pour vous aider à atteindre vos objectifs spécifiques."},
	},
}
