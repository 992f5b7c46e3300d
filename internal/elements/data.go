package elements

// table is the full periodic table, ordered by atomic number. Shell
// occupancies follow the observed ground-state configurations, so the
// familiar exceptions (Cr, Cu, Nb, Pd, ...) are reflected as-is. Grid
// coordinates place La and Ac in group 3 of the main table and the
// remaining f-block in detached rows 9 and 10.
var table = []Element{
	{Number: 1, Symbol: "H", Name: "Hydrogen", HebrewName: "מימן", HebrewSummary: "היסוד הקל והנפוץ ביותר ביקום", Category: Nonmetal, AtomicMass: "1.008", Phase: Gas, Shells: []int{1}, GridX: 1, GridY: 1},
	{Number: 2, Symbol: "He", Name: "Helium", HebrewName: "הליום", HebrewSummary: "גז אציל קל המשמש למילוי בלונים", Category: NobleGas, AtomicMass: "4.0026", Phase: Gas, Shells: []int{2}, GridX: 18, GridY: 1},
	{Number: 3, Symbol: "Li", Name: "Lithium", HebrewName: "ליתיום", HebrewSummary: "מתכת רכה המשמשת בסוללות נטענות", Category: AlkaliMetal, AtomicMass: "6.94", Phase: Solid, Shells: []int{2, 1}, GridX: 1, GridY: 2},
	{Number: 4, Symbol: "Be", Name: "Beryllium", HebrewName: "בריליום", HebrewSummary: "מתכת קשה וקלה אך רעילה", Category: AlkalineEarth, AtomicMass: "9.0122", Phase: Solid, Shells: []int{2, 2}, GridX: 2, GridY: 2},
	{Number: 5, Symbol: "B", Name: "Boron", HebrewName: "בור", HebrewSummary: "מתכת למחצה המשמשת בזכוכית חסינת חום", Category: Metalloid, AtomicMass: "10.81", Phase: Solid, Shells: []int{2, 3}, GridX: 13, GridY: 2},
	{Number: 6, Symbol: "C", Name: "Carbon", HebrewName: "פחמן", HebrewSummary: "אבן הבניין של הכימיה האורגנית והחיים", Category: Nonmetal, AtomicMass: "12.011", Phase: Solid, Shells: []int{2, 4}, GridX: 14, GridY: 2},
	{Number: 7, Symbol: "N", Name: "Nitrogen", HebrewName: "חנקן", HebrewSummary: "הגז העיקרי באטמוספירת כדור הארץ", Category: Nonmetal, AtomicMass: "14.007", Phase: Gas, Shells: []int{2, 5}, GridX: 15, GridY: 2},
	{Number: 8, Symbol: "O", Name: "Oxygen", HebrewName: "חמצן", HebrewSummary: "חיוני לנשימה ולתהליכי בעירה", Category: Nonmetal, AtomicMass: "15.999", Phase: Gas, Shells: []int{2, 6}, GridX: 16, GridY: 2},
	{Number: 9, Symbol: "F", Name: "Fluorine", HebrewName: "פלואור", HebrewSummary: "היסוד הפעיל ביותר מבחינה כימית", Category: Halogen, AtomicMass: "18.998", Phase: Gas, Shells: []int{2, 7}, GridX: 17, GridY: 2},
	{Number: 10, Symbol: "Ne", Name: "Neon", HebrewName: "נאון", HebrewSummary: "גז אציל הזוהר באדום בשלטי תאורה", Category: NobleGas, AtomicMass: "20.180", Phase: Gas, Shells: []int{2, 8}, GridX: 18, GridY: 2},
	{Number: 11, Symbol: "Na", Name: "Sodium", HebrewName: "נתרן", HebrewSummary: "מרכיב עיקרי במלח הבישול", Category: AlkaliMetal, AtomicMass: "22.990", Phase: Solid, Shells: []int{2, 8, 1}, GridX: 1, GridY: 3},
	{Number: 12, Symbol: "Mg", Name: "Magnesium", HebrewName: "מגנזיום", HebrewSummary: "מתכת קלה הבוערת באור לבן בוהק", Category: AlkalineEarth, AtomicMass: "24.305", Phase: Solid, Shells: []int{2, 8, 2}, GridX: 2, GridY: 3},
	{Number: 13, Symbol: "Al", Name: "Aluminium", HebrewName: "אלומיניום", HebrewSummary: "המתכת הנפוצה ביותר בקרום כדור הארץ", Category: PostTransition, AtomicMass: "26.982", Phase: Solid, Shells: []int{2, 8, 3}, GridX: 13, GridY: 3},
	{Number: 14, Symbol: "Si", Name: "Silicon", HebrewName: "צורן", HebrewSummary: "הבסיס לתעשיית המוליכים למחצה", Category: Metalloid, AtomicMass: "28.085", Phase: Solid, Shells: []int{2, 8, 4}, GridX: 14, GridY: 3},
	{Number: 15, Symbol: "P", Name: "Phosphorus", HebrewName: "זרחן", HebrewSummary: "חיוני לעצמות ולמולקולות התורשה", Category: Nonmetal, AtomicMass: "30.974", Phase: Solid, Shells: []int{2, 8, 5}, GridX: 15, GridY: 3},
	{Number: 16, Symbol: "S", Name: "Sulfur", HebrewName: "גופרית", HebrewSummary: "יסוד צהוב הידוע עוד מימי קדם", Category: Nonmetal, AtomicMass: "32.06", Phase: Solid, Shells: []int{2, 8, 6}, GridX: 16, GridY: 3},
	{Number: 17, Symbol: "Cl", Name: "Chlorine", HebrewName: "כלור", HebrewSummary: "גז ירקרק המשמש לחיטוי מים", Category: Halogen, AtomicMass: "35.45", Phase: Gas, Shells: []int{2, 8, 7}, GridX: 17, GridY: 3},
	{Number: 18, Symbol: "Ar", Name: "Argon", HebrewName: "ארגון", HebrewSummary: "הגז האציל הנפוץ ביותר באטמוספירה", Category: NobleGas, AtomicMass: "39.948", Phase: Gas, Shells: []int{2, 8, 8}, GridX: 18, GridY: 3},
	{Number: 19, Symbol: "K", Name: "Potassium", HebrewName: "אשלגן", HebrewSummary: "חיוני לפעילות העצבים והשרירים", Category: AlkaliMetal, AtomicMass: "39.098", Phase: Solid, Shells: []int{2, 8, 8, 1}, GridX: 1, GridY: 4},
	{Number: 20, Symbol: "Ca", Name: "Calcium", HebrewName: "סידן", HebrewSummary: "המרכיב העיקרי של עצמות ושיניים", Category: AlkalineEarth, AtomicMass: "40.078", Phase: Solid, Shells: []int{2, 8, 8, 2}, GridX: 2, GridY: 4},
	{Number: 21, Symbol: "Sc", Name: "Scandium", HebrewName: "סקנדיום", HebrewSummary: "מתכת נדירה המשמשת בסגסוגות קלות", Category: TransitionMetal, AtomicMass: "44.956", Phase: Solid, Shells: []int{2, 8, 9, 2}, GridX: 3, GridY: 4},
	{Number: 22, Symbol: "Ti", Name: "Titanium", HebrewName: "טיטניום", HebrewSummary: "מתכת חזקה וקלה העמידה בפני שיתוך", Category: TransitionMetal, AtomicMass: "47.867", Phase: Solid, Shells: []int{2, 8, 10, 2}, GridX: 4, GridY: 4},
	{Number: 23, Symbol: "V", Name: "Vanadium", HebrewName: "ונדיום", HebrewSummary: "מחזק פלדה גם בכמויות זעירות", Category: TransitionMetal, AtomicMass: "50.942", Phase: Solid, Shells: []int{2, 8, 11, 2}, GridX: 5, GridY: 4},
	{Number: 24, Symbol: "Cr", Name: "Chromium", HebrewName: "כרום", HebrewSummary: "מעניק לנירוסטה את עמידותה וברקה", Category: TransitionMetal, AtomicMass: "51.996", Phase: Solid, Shells: []int{2, 8, 13, 1}, GridX: 6, GridY: 4},
	{Number: 25, Symbol: "Mn", Name: "Manganese", HebrewName: "מנגן", HebrewSummary: "חיוני לייצור פלדה ולאנזימים בגוף", Category: TransitionMetal, AtomicMass: "54.938", Phase: Solid, Shells: []int{2, 8, 13, 2}, GridX: 7, GridY: 4},
	{Number: 26, Symbol: "Fe", Name: "Iron", HebrewName: "ברזל", HebrewSummary: "המתכת השימושית ביותר בתולדות האדם", Category: TransitionMetal, AtomicMass: "55.845", Phase: Solid, Shells: []int{2, 8, 14, 2}, GridX: 8, GridY: 4},
	{Number: 27, Symbol: "Co", Name: "Cobalt", HebrewName: "קובלט", HebrewSummary: "מקור הצבע הכחול העמוק בזכוכית", Category: TransitionMetal, AtomicMass: "58.933", Phase: Solid, Shells: []int{2, 8, 15, 2}, GridX: 9, GridY: 4},
	{Number: 28, Symbol: "Ni", Name: "Nickel", HebrewName: "ניקל", HebrewSummary: "מתכת מבריקה העמידה בפני חלודה", Category: TransitionMetal, AtomicMass: "58.693", Phase: Solid, Shells: []int{2, 8, 16, 2}, GridX: 10, GridY: 4},
	{Number: 29, Symbol: "Cu", Name: "Copper", HebrewName: "נחושת", HebrewSummary: "מוליכה מצוינת המשמשת בחיווט חשמלי", Category: TransitionMetal, AtomicMass: "63.546", Phase: Solid, Shells: []int{2, 8, 18, 1}, GridX: 11, GridY: 4},
	{Number: 30, Symbol: "Zn", Name: "Zinc", HebrewName: "אבץ", HebrewSummary: "מגן על פלדה מפני חלודה בציפוי גלווני", Category: TransitionMetal, AtomicMass: "65.38", Phase: Solid, Shells: []int{2, 8, 18, 2}, GridX: 12, GridY: 4},
	{Number: 31, Symbol: "Ga", Name: "Gallium", HebrewName: "גליום", HebrewSummary: "מתכת הנמסה בחום כף היד", Category: PostTransition, AtomicMass: "69.723", Phase: Solid, Shells: []int{2, 8, 18, 3}, GridX: 13, GridY: 4},
	{Number: 32, Symbol: "Ge", Name: "Germanium", HebrewName: "גרמניום", HebrewSummary: "שימש בטרנזיסטורים הראשונים", Category: Metalloid, AtomicMass: "72.630", Phase: Solid, Shells: []int{2, 8, 18, 4}, GridX: 14, GridY: 4},
	{Number: 33, Symbol: "As", Name: "Arsenic", HebrewName: "ארסן", HebrewSummary: "מתכת למחצה רעילה הידועה לשמצה", Category: Metalloid, AtomicMass: "74.922", Phase: Solid, Shells: []int{2, 8, 18, 5}, GridX: 15, GridY: 4},
	{Number: 34, Symbol: "Se", Name: "Selenium", HebrewName: "סלניום", HebrewSummary: "רגיש לאור ומשמש בתאים סולריים", Category: Nonmetal, AtomicMass: "78.971", Phase: Solid, Shells: []int{2, 8, 18, 6}, GridX: 16, GridY: 4},
	{Number: 35, Symbol: "Br", Name: "Bromine", HebrewName: "ברום", HebrewSummary: "הלוגן נוזלי אדמדם בטמפרטורת החדר", Category: Halogen, AtomicMass: "79.904", Phase: Liquid, Shells: []int{2, 8, 18, 7}, GridX: 17, GridY: 4},
	{Number: 36, Symbol: "Kr", Name: "Krypton", HebrewName: "קריפטון", HebrewSummary: "גז אציל המשמש בנורות הבזק", Category: NobleGas, AtomicMass: "83.798", Phase: Gas, Shells: []int{2, 8, 18, 8}, GridX: 18, GridY: 4},
	{Number: 37, Symbol: "Rb", Name: "Rubidium", HebrewName: "רובידיום", HebrewSummary: "מתכת אלקלית רכה בשעונים אטומיים", Category: AlkaliMetal, AtomicMass: "85.468", Phase: Solid, Shells: []int{2, 8, 18, 8, 1}, GridX: 1, GridY: 5},
	{Number: 38, Symbol: "Sr", Name: "Strontium", HebrewName: "סטרונציום", HebrewSummary: "מעניק לזיקוקים את צבעם האדום", Category: AlkalineEarth, AtomicMass: "87.62", Phase: Solid, Shells: []int{2, 8, 18, 8, 2}, GridX: 2, GridY: 5},
	{Number: 39, Symbol: "Y", Name: "Yttrium", HebrewName: "איטריום", HebrewSummary: "משמש במסכי לד ובמוליכי על", Category: TransitionMetal, AtomicMass: "88.906", Phase: Solid, Shells: []int{2, 8, 18, 9, 2}, GridX: 3, GridY: 5},
	{Number: 40, Symbol: "Zr", Name: "Zirconium", HebrewName: "זירקוניום", HebrewSummary: "עמיד בחום ומשמש בכורים גרעיניים", Category: TransitionMetal, AtomicMass: "91.224", Phase: Solid, Shells: []int{2, 8, 18, 10, 2}, GridX: 4, GridY: 5},
	{Number: 41, Symbol: "Nb", Name: "Niobium", HebrewName: "ניוביום", HebrewSummary: "מתכת רכה למוליכי על ולסגסוגות", Category: TransitionMetal, AtomicMass: "92.906", Phase: Solid, Shells: []int{2, 8, 18, 12, 1}, GridX: 5, GridY: 5},
	{Number: 42, Symbol: "Mo", Name: "Molybdenum", HebrewName: "מוליבדן", HebrewSummary: "מחזק פלדה בטמפרטורות גבוהות", Category: TransitionMetal, AtomicMass: "95.95", Phase: Solid, Shells: []int{2, 8, 18, 13, 1}, GridX: 6, GridY: 5},
	{Number: 43, Symbol: "Tc", Name: "Technetium", HebrewName: "טכנציום", HebrewSummary: "היסוד המלאכותי הראשון שיוצר במעבדה", Category: TransitionMetal, AtomicMass: "98", Phase: Solid, Shells: []int{2, 8, 18, 13, 2}, GridX: 7, GridY: 5},
	{Number: 44, Symbol: "Ru", Name: "Ruthenium", HebrewName: "רותניום", HebrewSummary: "מתכת נדירה ממשפחת הפלטינה", Category: TransitionMetal, AtomicMass: "101.07", Phase: Solid, Shells: []int{2, 8, 18, 15, 1}, GridX: 8, GridY: 5},
	{Number: 45, Symbol: "Rh", Name: "Rhodium", HebrewName: "רודיום", HebrewSummary: "מתכת יקרה בממירים קטליטיים", Category: TransitionMetal, AtomicMass: "102.91", Phase: Solid, Shells: []int{2, 8, 18, 16, 1}, GridX: 9, GridY: 5},
	{Number: 46, Symbol: "Pd", Name: "Palladium", HebrewName: "פלדיום", HebrewSummary: "סופח מימן ומשמש כזרז", Category: TransitionMetal, AtomicMass: "106.42", Phase: Solid, Shells: []int{2, 8, 18, 18}, GridX: 10, GridY: 5},
	{Number: 47, Symbol: "Ag", Name: "Silver", HebrewName: "כסף", HebrewSummary: "המוליך החשמלי הטוב מכל המתכות", Category: TransitionMetal, AtomicMass: "107.87", Phase: Solid, Shells: []int{2, 8, 18, 18, 1}, GridX: 11, GridY: 5},
	{Number: 48, Symbol: "Cd", Name: "Cadmium", HebrewName: "קדמיום", HebrewSummary: "מתכת רעילה ששימשה בסוללות", Category: TransitionMetal, AtomicMass: "112.41", Phase: Solid, Shells: []int{2, 8, 18, 18, 2}, GridX: 12, GridY: 5},
	{Number: 49, Symbol: "In", Name: "Indium", HebrewName: "אינדיום", HebrewSummary: "מתכת רכה בציפוי מסכי מגע", Category: PostTransition, AtomicMass: "114.82", Phase: Solid, Shells: []int{2, 8, 18, 18, 3}, GridX: 13, GridY: 5},
	{Number: 50, Symbol: "Sn", Name: "Tin", HebrewName: "בדיל", HebrewSummary: "רכיב הלחמה ותיק בתעשיית המתכת", Category: PostTransition, AtomicMass: "118.71", Phase: Solid, Shells: []int{2, 8, 18, 18, 4}, GridX: 14, GridY: 5},
	{Number: 51, Symbol: "Sb", Name: "Antimony", HebrewName: "אנטימון", HebrewSummary: "מתכת למחצה הידועה מימי קדם", Category: Metalloid, AtomicMass: "121.76", Phase: Solid, Shells: []int{2, 8, 18, 18, 5}, GridX: 15, GridY: 5},
	{Number: 52, Symbol: "Te", Name: "Tellurium", HebrewName: "טלור", HebrewSummary: "מתכת למחצה נדירה בתאים סולריים", Category: Metalloid, AtomicMass: "127.60", Phase: Solid, Shells: []int{2, 8, 18, 18, 6}, GridX: 16, GridY: 5},
	{Number: 53, Symbol: "I", Name: "Iodine", HebrewName: "יוד", HebrewSummary: "הלוגן כהה החיוני לבלוטת התריס", Category: Halogen, AtomicMass: "126.90", Phase: Solid, Shells: []int{2, 8, 18, 18, 7}, GridX: 17, GridY: 5},
	{Number: 54, Symbol: "Xe", Name: "Xenon", HebrewName: "קסנון", HebrewSummary: "גז אציל כבד בפנסי מכוניות", Category: NobleGas, AtomicMass: "131.29", Phase: Gas, Shells: []int{2, 8, 18, 18, 8}, GridX: 18, GridY: 5},
	{Number: 55, Symbol: "Cs", Name: "Caesium", HebrewName: "צזיום", HebrewSummary: "המתכת הפעילה ביותר ומגדירת השנייה", Category: AlkaliMetal, AtomicMass: "132.91", Phase: Solid, Shells: []int{2, 8, 18, 18, 8, 1}, GridX: 1, GridY: 6},
	{Number: 56, Symbol: "Ba", Name: "Barium", HebrewName: "בריום", HebrewSummary: "מתכת כבדה הבולעת קרני רנטגן", Category: AlkalineEarth, AtomicMass: "137.33", Phase: Solid, Shells: []int{2, 8, 18, 18, 8, 2}, GridX: 2, GridY: 6},
	{Number: 57, Symbol: "La", Name: "Lanthanum", HebrewName: "לנתן", HebrewSummary: "ראש משפחת הלנתנידים", Category: Lanthanide, AtomicMass: "138.91", Phase: Solid, Shells: []int{2, 8, 18, 18, 9, 2}, GridX: 3, GridY: 6},
	{Number: 58, Symbol: "Ce", Name: "Cerium", HebrewName: "צריום", HebrewSummary: "הלנתניד הנפוץ ביותר בקרום כדור הארץ", Category: Lanthanide, AtomicMass: "140.12", Phase: Solid, Shells: []int{2, 8, 18, 19, 9, 2}, GridX: 4, GridY: 9},
	{Number: 59, Symbol: "Pr", Name: "Praseodymium", HebrewName: "פראסאודימיום", HebrewSummary: "מעניק לזכוכית גוון ירקרק", Category: Lanthanide, AtomicMass: "140.91", Phase: Solid, Shells: []int{2, 8, 18, 21, 8, 2}, GridX: 5, GridY: 9},
	{Number: 60, Symbol: "Nd", Name: "Neodymium", HebrewName: "נאודימיום", HebrewSummary: "הבסיס למגנטים החזקים בעולם", Category: Lanthanide, AtomicMass: "144.24", Phase: Solid, Shells: []int{2, 8, 18, 22, 8, 2}, GridX: 6, GridY: 9},
	{Number: 61, Symbol: "Pm", Name: "Promethium", HebrewName: "פרומתיום", HebrewSummary: "לנתניד רדיואקטיבי נדיר ביותר", Category: Lanthanide, AtomicMass: "145", Phase: Solid, Shells: []int{2, 8, 18, 23, 8, 2}, GridX: 7, GridY: 9},
	{Number: 62, Symbol: "Sm", Name: "Samarium", HebrewName: "סמריום", HebrewSummary: "משמש במגנטים עמידי חום", Category: Lanthanide, AtomicMass: "150.36", Phase: Solid, Shells: []int{2, 8, 18, 24, 8, 2}, GridX: 8, GridY: 9},
	{Number: 63, Symbol: "Eu", Name: "Europium", HebrewName: "אירופיום", HebrewSummary: "מקור הזוהר האדום במסכים", Category: Lanthanide, AtomicMass: "151.96", Phase: Solid, Shells: []int{2, 8, 18, 25, 8, 2}, GridX: 9, GridY: 9},
	{Number: 64, Symbol: "Gd", Name: "Gadolinium", HebrewName: "גדוליניום", HebrewSummary: "משפר ניגודיות בדימות תהודה מגנטית", Category: Lanthanide, AtomicMass: "157.25", Phase: Solid, Shells: []int{2, 8, 18, 25, 9, 2}, GridX: 10, GridY: 9},
	{Number: 65, Symbol: "Tb", Name: "Terbium", HebrewName: "טרביום", HebrewSummary: "מרכיב הזרחנים הירוקים בתצוגות", Category: Lanthanide, AtomicMass: "158.93", Phase: Solid, Shells: []int{2, 8, 18, 27, 8, 2}, GridX: 11, GridY: 9},
	{Number: 66, Symbol: "Dy", Name: "Dysprosium", HebrewName: "דיספרוזיום", HebrewSummary: "חיוני למגנטים של טורבינות רוח", Category: Lanthanide, AtomicMass: "162.50", Phase: Solid, Shells: []int{2, 8, 18, 28, 8, 2}, GridX: 12, GridY: 9},
	{Number: 67, Symbol: "Ho", Name: "Holmium", HebrewName: "הולמיום", HebrewSummary: "בעל התכונות המגנטיות החזקות ביותר", Category: Lanthanide, AtomicMass: "164.93", Phase: Solid, Shells: []int{2, 8, 18, 29, 8, 2}, GridX: 13, GridY: 9},
	{Number: 68, Symbol: "Er", Name: "Erbium", HebrewName: "ארביום", HebrewSummary: "מגביר אותות בסיבים אופטיים", Category: Lanthanide, AtomicMass: "167.26", Phase: Solid, Shells: []int{2, 8, 18, 30, 8, 2}, GridX: 14, GridY: 9},
	{Number: 69, Symbol: "Tm", Name: "Thulium", HebrewName: "תוליום", HebrewSummary: "הנדיר ביותר מבין הלנתנידים היציבים", Category: Lanthanide, AtomicMass: "168.93", Phase: Solid, Shells: []int{2, 8, 18, 31, 8, 2}, GridX: 15, GridY: 9},
	{Number: 70, Symbol: "Yb", Name: "Ytterbium", HebrewName: "איטרביום", HebrewSummary: "משמש בשעונים אטומיים מדויקים", Category: Lanthanide, AtomicMass: "173.05", Phase: Solid, Shells: []int{2, 8, 18, 32, 8, 2}, GridX: 16, GridY: 9},
	{Number: 71, Symbol: "Lu", Name: "Lutetium", HebrewName: "לוטציום", HebrewSummary: "הלנתניד הכבד והקשה ביותר", Category: Lanthanide, AtomicMass: "174.97", Phase: Solid, Shells: []int{2, 8, 18, 32, 9, 2}, GridX: 17, GridY: 9},
	{Number: 72, Symbol: "Hf", Name: "Hafnium", HebrewName: "הפניום", HebrewSummary: "בולע נייטרונים במוטות בקרה גרעיניים", Category: TransitionMetal, AtomicMass: "178.49", Phase: Solid, Shells: []int{2, 8, 18, 32, 10, 2}, GridX: 4, GridY: 6},
	{Number: 73, Symbol: "Ta", Name: "Tantalum", HebrewName: "טנטלום", HebrewSummary: "מתכת עמידה בקבלים זעירים", Category: TransitionMetal, AtomicMass: "180.95", Phase: Solid, Shells: []int{2, 8, 18, 32, 11, 2}, GridX: 5, GridY: 6},
	{Number: 74, Symbol: "W", Name: "Tungsten", HebrewName: "טונגסטן", HebrewSummary: "בעל נקודת ההיתוך הגבוהה מכל המתכות", Category: TransitionMetal, AtomicMass: "183.84", Phase: Solid, Shells: []int{2, 8, 18, 32, 12, 2}, GridX: 6, GridY: 6},
	{Number: 75, Symbol: "Re", Name: "Rhenium", HebrewName: "רניום", HebrewSummary: "מהנדירים שבמתכות קרום כדור הארץ", Category: TransitionMetal, AtomicMass: "186.21", Phase: Solid, Shells: []int{2, 8, 18, 32, 13, 2}, GridX: 7, GridY: 6},
	{Number: 76, Symbol: "Os", Name: "Osmium", HebrewName: "אוסמיום", HebrewSummary: "המתכת הצפופה ביותר בטבע", Category: TransitionMetal, AtomicMass: "190.23", Phase: Solid, Shells: []int{2, 8, 18, 32, 14, 2}, GridX: 8, GridY: 6},
	{Number: 77, Symbol: "Ir", Name: "Iridium", HebrewName: "אירידיום", HebrewSummary: "מתכת קשה הקשורה להכחדת הדינוזאורים", Category: TransitionMetal, AtomicMass: "192.22", Phase: Solid, Shells: []int{2, 8, 18, 32, 15, 2}, GridX: 9, GridY: 6},
	{Number: 78, Symbol: "Pt", Name: "Platinum", HebrewName: "פלטינה", HebrewSummary: "מתכת אצילה לתכשיטים וזרזים", Category: TransitionMetal, AtomicMass: "195.08", Phase: Solid, Shells: []int{2, 8, 18, 32, 17, 1}, GridX: 10, GridY: 6},
	{Number: 79, Symbol: "Au", Name: "Gold", HebrewName: "זהב", HebrewSummary: "מתכת אצילה הנחשקת מאז שחר ההיסטוריה", Category: TransitionMetal, AtomicMass: "196.97", Phase: Solid, Shells: []int{2, 8, 18, 32, 18, 1}, GridX: 11, GridY: 6},
	{Number: 80, Symbol: "Hg", Name: "Mercury", HebrewName: "כספית", HebrewSummary: "המתכת היחידה הנוזלית בטמפרטורת החדר", Category: TransitionMetal, AtomicMass: "200.59", Phase: Liquid, Shells: []int{2, 8, 18, 32, 18, 2}, GridX: 12, GridY: 6},
	{Number: 81, Symbol: "Tl", Name: "Thallium", HebrewName: "תליום", HebrewSummary: "מתכת רכה ורעילה מאוד", Category: PostTransition, AtomicMass: "204.38", Phase: Solid, Shells: []int{2, 8, 18, 32, 18, 3}, GridX: 13, GridY: 6},
	{Number: 82, Symbol: "Pb", Name: "Lead", HebrewName: "עופרת", HebrewSummary: "מתכת כבדה החוסמת קרינה", Category: PostTransition, AtomicMass: "207.2", Phase: Solid, Shells: []int{2, 8, 18, 32, 18, 4}, GridX: 14, GridY: 6},
	{Number: 83, Symbol: "Bi", Name: "Bismuth", HebrewName: "ביסמוט", HebrewSummary: "יוצר גבישי מדרגות בצבעי קשת", Category: PostTransition, AtomicMass: "208.98", Phase: Solid, Shells: []int{2, 8, 18, 32, 18, 5}, GridX: 15, GridY: 6},
	{Number: 84, Symbol: "Po", Name: "Polonium", HebrewName: "פולוניום", HebrewSummary: "יסוד רדיואקטיבי שגילתה מרי קירי", Category: PostTransition, AtomicMass: "209", Phase: Solid, Shells: []int{2, 8, 18, 32, 18, 6}, GridX: 16, GridY: 6},
	{Number: 85, Symbol: "At", Name: "Astatine", HebrewName: "אסטטין", HebrewSummary: "היסוד הטבעי הנדיר ביותר בכדור הארץ", Category: Halogen, AtomicMass: "210", Phase: Solid, Shells: []int{2, 8, 18, 32, 18, 7}, GridX: 17, GridY: 6},
	{Number: 86, Symbol: "Rn", Name: "Radon", HebrewName: "רדון", HebrewSummary: "גז אציל רדיואקטיבי המצטבר במרתפים", Category: NobleGas, AtomicMass: "222", Phase: Gas, Shells: []int{2, 8, 18, 32, 18, 8}, GridX: 18, GridY: 6},
	{Number: 87, Symbol: "Fr", Name: "Francium", HebrewName: "פרנציום", HebrewSummary: "המתכת האלקלית הכבדה והנדירה ביותר", Category: AlkaliMetal, AtomicMass: "223", Phase: Solid, Shells: []int{2, 8, 18, 32, 18, 8, 1}, GridX: 1, GridY: 7},
	{Number: 88, Symbol: "Ra", Name: "Radium", HebrewName: "רדיום", HebrewSummary: "יסוד זוהר שגילו מרי ופייר קירי", Category: AlkalineEarth, AtomicMass: "226", Phase: Solid, Shells: []int{2, 8, 18, 32, 18, 8, 2}, GridX: 2, GridY: 7},
	{Number: 89, Symbol: "Ac", Name: "Actinium", HebrewName: "אקטיניום", HebrewSummary: "ראש משפחת האקטינידים הרדיואקטיביים", Category: Actinide, AtomicMass: "227", Phase: Solid, Shells: []int{2, 8, 18, 32, 18, 9, 2}, GridX: 3, GridY: 7},
	{Number: 90, Symbol: "Th", Name: "Thorium", HebrewName: "תוריום", HebrewSummary: "דלק גרעיני חלופי פוטנציאלי", Category: Actinide, AtomicMass: "232.04", Phase: Solid, Shells: []int{2, 8, 18, 32, 18, 10, 2}, GridX: 4, GridY: 10},
	{Number: 91, Symbol: "Pa", Name: "Protactinium", HebrewName: "פרוטקטיניום", HebrewSummary: "אקטיניד נדיר ורדיואקטיבי", Category: Actinide, AtomicMass: "231.04", Phase: Solid, Shells: []int{2, 8, 18, 32, 20, 9, 2}, GridX: 5, GridY: 10},
	{Number: 92, Symbol: "U", Name: "Uranium", HebrewName: "אורניום", HebrewSummary: "הדלק העיקרי של הכורים הגרעיניים", Category: Actinide, AtomicMass: "238.03", Phase: Solid, Shells: []int{2, 8, 18, 32, 21, 9, 2}, GridX: 6, GridY: 10},
	{Number: 93, Symbol: "Np", Name: "Neptunium", HebrewName: "נפטוניום", HebrewSummary: "היסוד העל-אורני הראשון שהתגלה", Category: Actinide, AtomicMass: "237", Phase: Solid, Shells: []int{2, 8, 18, 32, 22, 9, 2}, GridX: 7, GridY: 10},
	{Number: 94, Symbol: "Pu", Name: "Plutonium", HebrewName: "פלוטוניום", HebrewSummary: "יסוד מלאכותי בלב הנשק הגרעיני", Category: Actinide, AtomicMass: "244", Phase: Solid, Shells: []int{2, 8, 18, 32, 24, 8, 2}, GridX: 8, GridY: 10},
	{Number: 95, Symbol: "Am", Name: "Americium", HebrewName: "אמריציום", HebrewSummary: "משמש בגלאי עשן ביתיים", Category: Actinide, AtomicMass: "243", Phase: Solid, Shells: []int{2, 8, 18, 32, 25, 8, 2}, GridX: 9, GridY: 10},
	{Number: 96, Symbol: "Cm", Name: "Curium", HebrewName: "קיוריום", HebrewSummary: "קרוי על שם מרי ופייר קירי", Category: Actinide, AtomicMass: "247", Phase: Solid, Shells: []int{2, 8, 18, 32, 25, 9, 2}, GridX: 10, GridY: 10},
	{Number: 97, Symbol: "Bk", Name: "Berkelium", HebrewName: "ברקליום", HebrewSummary: "קרוי על שם העיר ברקלי בקליפורניה", Category: Actinide, AtomicMass: "247", Phase: Solid, Shells: []int{2, 8, 18, 32, 27, 8, 2}, GridX: 11, GridY: 10},
	{Number: 98, Symbol: "Cf", Name: "Californium", HebrewName: "קליפורניום", HebrewSummary: "מקור נייטרונים עוצמתי במיוחד", Category: Actinide, AtomicMass: "251", Phase: Solid, Shells: []int{2, 8, 18, 32, 28, 8, 2}, GridX: 12, GridY: 10},
	{Number: 99, Symbol: "Es", Name: "Einsteinium", HebrewName: "איינשטייניום", HebrewSummary: "קרוי על שם אלברט איינשטיין", Category: Actinide, AtomicMass: "252", Phase: Solid, Shells: []int{2, 8, 18, 32, 29, 8, 2}, GridX: 13, GridY: 10},
	{Number: 100, Symbol: "Fm", Name: "Fermium", HebrewName: "פרמיום", HebrewSummary: "קרוי על שם הפיזיקאי אנריקו פרמי", Category: Actinide, AtomicMass: "257", Phase: Solid, Shells: []int{2, 8, 18, 32, 30, 8, 2}, GridX: 14, GridY: 10},
	{Number: 101, Symbol: "Md", Name: "Mendelevium", HebrewName: "מנדלביום", HebrewSummary: "קרוי על שם מנדלייב אבי הטבלה", Category: Actinide, AtomicMass: "258", Phase: Solid, Shells: []int{2, 8, 18, 32, 31, 8, 2}, GridX: 15, GridY: 10},
	{Number: 102, Symbol: "No", Name: "Nobelium", HebrewName: "נובליום", HebrewSummary: "קרוי על שם אלפרד נובל", Category: Actinide, AtomicMass: "259", Phase: Solid, Shells: []int{2, 8, 18, 32, 32, 8, 2}, GridX: 16, GridY: 10},
	{Number: 103, Symbol: "Lr", Name: "Lawrencium", HebrewName: "לורנציום", HebrewSummary: "חותם את שורת האקטינידים", Category: Actinide, AtomicMass: "266", Phase: Solid, Shells: []int{2, 8, 18, 32, 32, 8, 3}, GridX: 17, GridY: 10},
	{Number: 104, Symbol: "Rf", Name: "Rutherfordium", HebrewName: "רתרפורדיום", HebrewSummary: "היסוד העל-כבד הראשון שיוצר", Category: TransitionMetal, AtomicMass: "267", Phase: UnknownPhase, Shells: []int{2, 8, 18, 32, 32, 10, 2}, GridX: 4, GridY: 7},
	{Number: 105, Symbol: "Db", Name: "Dubnium", HebrewName: "דובניום", HebrewSummary: "קרוי על שם מכון המחקר בדובנה", Category: TransitionMetal, AtomicMass: "268", Phase: UnknownPhase, Shells: []int{2, 8, 18, 32, 32, 11, 2}, GridX: 5, GridY: 7},
	{Number: 106, Symbol: "Sg", Name: "Seaborgium", HebrewName: "סיבורגיום", HebrewSummary: "קרוי על שם הכימאי גלן סיבורג", Category: TransitionMetal, AtomicMass: "269", Phase: UnknownPhase, Shells: []int{2, 8, 18, 32, 32, 12, 2}, GridX: 6, GridY: 7},
	{Number: 107, Symbol: "Bh", Name: "Bohrium", HebrewName: "בוהריום", HebrewSummary: "קרוי על שם נילס בוהר", Category: TransitionMetal, AtomicMass: "270", Phase: UnknownPhase, Shells: []int{2, 8, 18, 32, 32, 13, 2}, GridX: 7, GridY: 7},
	{Number: 108, Symbol: "Hs", Name: "Hassium", HebrewName: "האסיום", HebrewSummary: "קרוי על שם מדינת הסן בגרמניה", Category: TransitionMetal, AtomicMass: "269", Phase: UnknownPhase, Shells: []int{2, 8, 18, 32, 32, 14, 2}, GridX: 8, GridY: 7},
	{Number: 109, Symbol: "Mt", Name: "Meitnerium", HebrewName: "מייטנריום", HebrewSummary: "קרוי על שם ליזה מייטנר", Category: UnknownCategory, AtomicMass: "278", Phase: UnknownPhase, Shells: []int{2, 8, 18, 32, 32, 15, 2}, GridX: 9, GridY: 7},
	{Number: 110, Symbol: "Ds", Name: "Darmstadtium", HebrewName: "דרמשטטיום", HebrewSummary: "קרוי על שם העיר דרמשטט", Category: UnknownCategory, AtomicMass: "281", Phase: UnknownPhase, Shells: []int{2, 8, 18, 32, 32, 16, 2}, GridX: 10, GridY: 7},
	{Number: 111, Symbol: "Rg", Name: "Roentgenium", HebrewName: "רנטגניום", HebrewSummary: "קרוי על שם וילהלם רנטגן", Category: UnknownCategory, AtomicMass: "282", Phase: UnknownPhase, Shells: []int{2, 8, 18, 32, 32, 17, 2}, GridX: 11, GridY: 7},
	{Number: 112, Symbol: "Cn", Name: "Copernicium", HebrewName: "קופרניציום", HebrewSummary: "קרוי על שם ניקולאוס קופרניקוס", Category: TransitionMetal, AtomicMass: "285", Phase: UnknownPhase, Shells: []int{2, 8, 18, 32, 32, 18, 2}, GridX: 12, GridY: 7},
	{Number: 113, Symbol: "Nh", Name: "Nihonium", HebrewName: "ניהוניום", HebrewSummary: "היסוד הראשון שהתגלה ביפן", Category: UnknownCategory, AtomicMass: "286", Phase: UnknownPhase, Shells: []int{2, 8, 18, 32, 32, 18, 3}, GridX: 13, GridY: 7},
	{Number: 114, Symbol: "Fl", Name: "Flerovium", HebrewName: "פלרוביום", HebrewSummary: "קרוי על שם הפיזיקאי גיאורגי פליורוב", Category: UnknownCategory, AtomicMass: "289", Phase: UnknownPhase, Shells: []int{2, 8, 18, 32, 32, 18, 4}, GridX: 14, GridY: 7},
	{Number: 115, Symbol: "Mc", Name: "Moscovium", HebrewName: "מוסקוביום", HebrewSummary: "קרוי על שם מחוז מוסקבה", Category: UnknownCategory, AtomicMass: "290", Phase: UnknownPhase, Shells: []int{2, 8, 18, 32, 32, 18, 5}, GridX: 15, GridY: 7},
	{Number: 116, Symbol: "Lv", Name: "Livermorium", HebrewName: "ליברמוריום", HebrewSummary: "קרוי על שם מעבדת ליברמור", Category: UnknownCategory, AtomicMass: "293", Phase: UnknownPhase, Shells: []int{2, 8, 18, 32, 32, 18, 6}, GridX: 16, GridY: 7},
	{Number: 117, Symbol: "Ts", Name: "Tennessine", HebrewName: "טנסין", HebrewSummary: "קרוי על שם מדינת טנסי", Category: UnknownCategory, AtomicMass: "294", Phase: UnknownPhase, Shells: []int{2, 8, 18, 32, 32, 18, 7}, GridX: 17, GridY: 7},
	{Number: 118, Symbol: "Og", Name: "Oganesson", HebrewName: "אוגנסון", HebrewSummary: "קרוי על שם יורי אוגנסיאן", Category: UnknownCategory, AtomicMass: "294", Phase: UnknownPhase, Shells: []int{2, 8, 18, 32, 32, 18, 8}, GridX: 18, GridY: 7},
}
