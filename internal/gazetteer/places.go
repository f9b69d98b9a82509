package gazetteer

// Cities lists the 81 Turkish provinces plus common variants, lowercase.
var Cities = toSet([]string{
	"adana", "adıyaman", "afyon", "afyonkarahisar", "ağrı", "amasya", "ankara", "antalya",
	"artvin", "aydın", "balıkesir", "bilecik", "bingöl", "bitlis", "bolu", "burdur",
	"bursa", "çanakkale", "çankırı", "çorum", "denizli", "diyarbakır", "edirne", "elazığ",
	"erzincan", "erzurum", "eskişehir", "gaziantep", "giresun", "gümüşhane", "hakkari",
	"hatay", "ısparta", "mersin", "icel", "istanbul", "izmir", "kars", "kastamonu",
	"kayseri", "kırklareli", "kırşehir", "kocaeli", "konya", "kütahya", "malatya",
	"manisa", "kahramanmaraş", "mardin", "muğla", "muş", "nevşehir", "niğde", "ordu",
	"rize", "sakarya", "samsun", "siirt", "sinop", "sivas", "tekirdağ", "tokat",
	"trabzon", "tunceli", "şanlıurfa", "uşak", "van", "yozgat", "zonguldak", "aksaray",
	"bayburt", "karaman", "kırıkkale", "batman", "şırnak", "bartın", "ardahan", "iğdır",
	"yalova", "karabük", "kilis", "osmaniye", "düzce",
})

// Districts lists district names of the largest provinces, lowercase.
var Districts = toSet([]string{
	// İstanbul
	"adalar", "arnavutköy", "ataşehir", "avcılar", "bağcılar", "bahçelievler",
	"bakırköy", "başakşehir", "bayrampaşa", "beşiktaş", "beykoz", "beylikdüzü",
	"beyoğlu", "büyükçekmece", "çatalca", "çekmeköy", "esenler", "esenyurt",
	"eyüpsultan", "fatih", "gaziosmanpaşa", "güngören", "kadıköy", "kağıthane",
	"kartal", "küçükçekmece", "maltepe", "pendik", "sancaktepe", "sarıyer",
	"silivri", "sultanbeyli", "sultangazi", "şile", "şişli", "tuzla", "ümraniye",
	"üsküdar", "zeytinburnu",
	// Ankara
	"altındağ", "aydınlıkevler", "bala", "beypazarı", "çamlıdere", "çankaya",
	"çubuk", "elmadağ", "etimesgut", "evren", "gölbaşı", "güdül", "haymana",
	"kalecik", "kızılcahamam", "keçiören", "mamak", "nallıhan", "polatlı",
	"pursaklar", "sincan", "şereflikoçhisar", "yenimahalle",
	// İzmir
	"aliağa", "bayındır", "bayraklı", "bergama", "bornova", "buca", "çeşme",
	"çiğli", "dikili", "foça", "gaziemir", "güzelbahçe", "karaburun", "karşıyaka",
	"kemalpaşa", "kınık", "kiraz", "konak", "menderes", "menemen", "narlıdere",
	"ödemiş", "seferihisar", "selçuk", "tire", "torbalı", "urla",
	// Bursa
	"büyükorhan", "gemlik", "gürsu", "harmancık", "ınegöl", "iznik", "karacabey",
	"keles", "kestel", "mudanya", "mustafakemalpaşa", "nilüfer", "orhaneli",
	"orhangazi", "osmangazi", "yenişehir", "yenikent",
	// Antalya
	"akseki", "aksu", "alanya", "demre", "döşemealtı", "elmali", "finike",
	"gazipaşa", "gündoğmuş", "ıbradı", "kaş", "kemer", "kepez", "konyaaltı",
	"kumluca", "manavgat", "muratpaşa", "serik",
	// Adana
	"aladağ", "ceyhan", "çukurova", "feke", "imamoğlu", "karaisalı", "karataş",
	"kozan", "pozantı", "saimbeyli", "sarçam", "seyhan", "tufanbeyli", "yumurtalık",
	"yüreğir",
	// Kocaeli
	"başiskele", "çayırova", "darıca", "derince", "dilovası", "gebze", "gölcük",
	"izmit", "kandıra", "karamürsel", "kartepe", "köseköy", "körfez",
	// Gaziantep
	"araban", "ıslahiye", "karkamış", "nizip", "nurdağı", "oğuzeli", "şahinbey",
	"şehitkamil", "yavuzeli",
	// Konya
	"akören", "akşehir", "altınekin", "beyşehir", "bozkır", "cihanbeyli",
	"çeltik", "çumra", "derbent", "derebucak", "doğanhisar", "emirgazi",
	"ereğli", "güneysinir", "hadim", "halkapınar", "hüyük", "ilgın", "kadınhanı",
	"karapınar", "kulu", "meram", "sarayönü", "selçuklu", "seydişehir", "taşkent",
	"tuzlukçu", "yalıhüyük", "yunak",
})

// IsPlace reports whether a lowercase word is a known city or district.
func IsPlace(word string) bool {
	return Cities[word] || Districts[word]
}
