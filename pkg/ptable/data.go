package ptable

// isotopeData is one row of the embedded isotope dataset.
type isotopeData struct {
	a         int     // mass number
	mass      float64 // isotopic mass in amu
	abundance float64 // natural abundance in percent; 0 when unknown or unstable
}

// elementData is one row of the embedded element dataset.
type elementData struct {
	symbol   string
	z        int
	period   int
	group    int     // IUPAC group 1-18; lanthanoids and actinoids carry group 3
	weight   float64 // standard atomic weight
	isotopes []isotopeData
}

// elementTable is the embedded periodic-table dataset, elements 1-92.
// Isotopic masses and abundances follow the NIST/CIAAW compilations.
// Radioisotopes carry zero abundance and are filtered out by any positive
// abundance threshold.
var elementTable = []elementData{
	{"H", 1, 1, 1, 1.008, []isotopeData{
		{1, 1.0078250319, 99.9885},
		{2, 2.0141017780, 0.0115},
		{3, 3.0160492779, 0},
	}},
	{"He", 2, 1, 18, 4.002602, []isotopeData{
		{3, 3.0160293201, 0.000134},
		{4, 4.0026032541, 99.999866},
	}},
	{"Li", 3, 2, 1, 6.94, []isotopeData{
		{6, 6.0151228874, 7.59},
		{7, 7.0160034366, 92.41},
	}},
	{"Be", 4, 2, 2, 9.0121831, []isotopeData{
		{9, 9.0121831, 100},
	}},
	{"B", 5, 2, 13, 10.81, []isotopeData{
		{10, 10.0129369, 19.9},
		{11, 11.0093054, 80.1},
	}},
	{"C", 6, 2, 14, 12.011, []isotopeData{
		{12, 12.0000000, 98.93},
		{13, 13.0033548378, 1.07},
		{14, 14.0032419884, 0},
	}},
	{"N", 7, 2, 15, 14.007, []isotopeData{
		{14, 14.0030740048, 99.636},
		{15, 15.0001088982, 0.364},
	}},
	{"O", 8, 2, 16, 15.999, []isotopeData{
		{16, 15.9949146196, 99.757},
		{17, 16.9991317012, 0.038},
		{18, 17.9991610043, 0.205},
	}},
	{"F", 9, 2, 17, 18.998403163, []isotopeData{
		{19, 18.9984031627, 100},
	}},
	{"Ne", 10, 2, 18, 20.1797, []isotopeData{
		{20, 19.9924401762, 90.48},
		{21, 20.993846685, 0.27},
		{22, 21.991385114, 9.25},
	}},
	{"Na", 11, 3, 1, 22.98976928, []isotopeData{
		{23, 22.9897692820, 100},
	}},
	{"Mg", 12, 3, 2, 24.305, []isotopeData{
		{24, 23.985041697, 78.99},
		{25, 24.985836976, 10.00},
		{26, 25.982592968, 11.01},
	}},
	{"Al", 13, 3, 13, 26.9815385, []isotopeData{
		{27, 26.98153853, 100},
	}},
	{"Si", 14, 3, 14, 28.085, []isotopeData{
		{28, 27.9769265347, 92.223},
		{29, 28.9764946649, 4.685},
		{30, 29.973770136, 3.092},
	}},
	{"P", 15, 3, 15, 30.973761998, []isotopeData{
		{31, 30.9737619984, 100},
	}},
	{"S", 16, 3, 16, 32.06, []isotopeData{
		{32, 31.9720711744, 94.99},
		{33, 32.9714589098, 0.75},
		{34, 33.967867004, 4.25},
		{36, 35.96708071, 0.01},
	}},
	{"Cl", 17, 3, 17, 35.45, []isotopeData{
		{35, 34.968852682, 75.76},
		{37, 36.965902602, 24.24},
	}},
	{"Ar", 18, 3, 18, 39.948, []isotopeData{
		{36, 35.967545105, 0.3365},
		{38, 37.96273211, 0.0632},
		{40, 39.9623831237, 99.6003},
	}},
	{"K", 19, 4, 1, 39.0983, []isotopeData{
		{39, 38.9637064864, 93.2581},
		{40, 39.963998166, 0.0117},
		{41, 40.9618252579, 6.7302},
	}},
	{"Ca", 20, 4, 2, 40.078, []isotopeData{
		{40, 39.962590863, 96.941},
		{42, 41.95861783, 0.647},
		{43, 42.95876644, 0.135},
		{44, 43.95548156, 2.086},
		{46, 45.9536890, 0.004},
		{48, 47.95252276, 0.187},
	}},
	{"Sc", 21, 4, 3, 44.955908, []isotopeData{
		{45, 44.95590828, 100},
	}},
	{"Ti", 22, 4, 4, 47.867, []isotopeData{
		{46, 45.95262772, 8.25},
		{47, 46.95175879, 7.44},
		{48, 47.94794198, 73.72},
		{49, 48.94786568, 5.41},
		{50, 49.94478689, 5.18},
	}},
	{"V", 23, 4, 5, 50.9415, []isotopeData{
		{50, 49.94715601, 0.250},
		{51, 50.94395704, 99.750},
	}},
	{"Cr", 24, 4, 6, 51.9961, []isotopeData{
		{50, 49.94604183, 4.345},
		{52, 51.94050623, 83.789},
		{53, 52.94064815, 9.501},
		{54, 53.93887916, 2.365},
	}},
	{"Mn", 25, 4, 7, 54.938044, []isotopeData{
		{55, 54.93804391, 100},
	}},
	{"Fe", 26, 4, 8, 55.845, []isotopeData{
		{54, 53.93960899, 5.845},
		{56, 55.93493633, 91.754},
		{57, 56.93539284, 2.119},
		{58, 57.93327443, 0.282},
	}},
	{"Co", 27, 4, 9, 58.933194, []isotopeData{
		{59, 58.93319429, 100},
	}},
	{"Ni", 28, 4, 10, 58.6934, []isotopeData{
		{58, 57.93534241, 68.0769},
		{60, 59.93078588, 26.2231},
		{61, 60.93105557, 1.1399},
		{62, 61.92834537, 3.6345},
		{64, 63.92796682, 0.9256},
	}},
	{"Cu", 29, 4, 11, 63.546, []isotopeData{
		{63, 62.92959772, 69.15},
		{65, 64.92778970, 30.85},
	}},
	{"Zn", 30, 4, 12, 65.38, []isotopeData{
		{64, 63.92914201, 48.63},
		{66, 65.92603381, 27.90},
		{67, 66.92712775, 4.10},
		{68, 67.92484455, 18.75},
		{70, 69.9253192, 0.62},
	}},
	{"Ga", 31, 4, 13, 69.723, []isotopeData{
		{69, 68.9255735, 60.108},
		{71, 70.92470258, 39.892},
	}},
	{"Ge", 32, 4, 14, 72.630, []isotopeData{
		{70, 69.92424875, 20.57},
		{72, 71.922075826, 27.45},
		{73, 72.923458956, 7.75},
		{74, 73.921177761, 36.50},
		{76, 75.921402726, 7.73},
	}},
	{"As", 33, 4, 15, 74.921595, []isotopeData{
		{75, 74.92159457, 100},
	}},
	{"Se", 34, 4, 16, 78.971, []isotopeData{
		{74, 73.922475934, 0.89},
		{76, 75.919213704, 9.37},
		{77, 76.919914154, 7.63},
		{78, 77.91730928, 23.77},
		{80, 79.9165218, 49.61},
		{82, 81.9166995, 8.73},
	}},
	{"Br", 35, 4, 17, 79.904, []isotopeData{
		{79, 78.9183376, 50.69},
		{81, 80.9162897, 49.31},
	}},
	{"Kr", 36, 4, 18, 83.798, []isotopeData{
		{78, 77.92036494, 0.355},
		{80, 79.91637808, 2.286},
		{82, 81.91348273, 11.593},
		{83, 82.91412716, 11.500},
		{84, 83.9114977282, 56.987},
		{86, 85.9106106269, 17.279},
	}},
	{"Rb", 37, 5, 1, 85.4678, []isotopeData{
		{85, 84.9117897379, 72.17},
		{87, 86.9091805310, 27.83},
	}},
	{"Sr", 38, 5, 2, 87.62, []isotopeData{
		{84, 83.9134191, 0.56},
		{86, 85.9092606, 9.86},
		{87, 86.9088775, 7.00},
		{88, 87.9056125, 82.58},
	}},
	{"Y", 39, 5, 3, 88.90584, []isotopeData{
		{89, 88.9058403, 100},
	}},
	{"Zr", 40, 5, 4, 91.224, []isotopeData{
		{90, 89.9046977, 51.45},
		{91, 90.9056396, 11.22},
		{92, 91.9050347, 17.15},
		{94, 93.9063108, 17.38},
		{96, 95.9082714, 2.80},
	}},
	{"Nb", 41, 5, 5, 92.90637, []isotopeData{
		{93, 92.9063730, 100},
	}},
	{"Mo", 42, 5, 6, 95.95, []isotopeData{
		{92, 91.90680796, 14.53},
		{94, 93.90508490, 9.15},
		{95, 94.90583877, 15.84},
		{96, 95.90467612, 16.67},
		{97, 96.90601812, 9.60},
		{98, 97.90540482, 24.39},
		{100, 99.9074718, 9.82},
	}},
	{"Tc", 43, 5, 7, 98, []isotopeData{
		{98, 97.9072124, 0},
	}},
	{"Ru", 44, 5, 8, 101.07, []isotopeData{
		{96, 95.90759025, 5.54},
		{98, 97.9052868, 1.87},
		{99, 98.9059341, 12.76},
		{100, 99.9042143, 12.60},
		{101, 100.9055769, 17.06},
		{102, 101.9043441, 31.55},
		{104, 103.9054275, 18.62},
	}},
	{"Rh", 45, 5, 9, 102.90550, []isotopeData{
		{103, 102.9054980, 100},
	}},
	{"Pd", 46, 5, 10, 106.42, []isotopeData{
		{102, 101.9056022, 1.02},
		{104, 103.9040305, 11.14},
		{105, 104.9050796, 22.33},
		{106, 105.9034804, 27.33},
		{108, 107.9038916, 26.46},
		{110, 109.90517220, 11.72},
	}},
	{"Ag", 47, 5, 11, 107.8682, []isotopeData{
		{107, 106.9050916, 51.839},
		{109, 108.9047553, 48.161},
	}},
	{"Cd", 48, 5, 12, 112.414, []isotopeData{
		{106, 105.9064599, 1.25},
		{108, 107.9041834, 0.89},
		{110, 109.90300661, 12.49},
		{111, 110.90418287, 12.80},
		{112, 111.90276287, 24.13},
		{113, 112.90440813, 12.22},
		{114, 113.90336509, 28.73},
		{116, 115.90476315, 7.49},
	}},
	{"In", 49, 5, 13, 114.818, []isotopeData{
		{113, 112.90406184, 4.29},
		{115, 114.903878776, 95.71},
	}},
	{"Sn", 50, 5, 14, 118.710, []isotopeData{
		{112, 111.90482387, 0.97},
		{114, 113.9027827, 0.66},
		{115, 114.903344699, 0.34},
		{116, 115.90174280, 14.54},
		{117, 116.90295398, 7.68},
		{118, 117.90160657, 24.22},
		{119, 118.90331117, 8.59},
		{120, 119.90220163, 32.58},
		{122, 121.9034438, 4.63},
		{124, 123.9052766, 5.79},
	}},
	{"Sb", 51, 5, 15, 121.760, []isotopeData{
		{121, 120.9038120, 57.21},
		{123, 122.9042132, 42.79},
	}},
	{"Te", 52, 5, 16, 127.60, []isotopeData{
		{120, 119.9040593, 0.09},
		{122, 121.9030435, 2.55},
		{123, 122.9042698, 0.89},
		{124, 123.9028171, 4.74},
		{125, 124.9044299, 7.07},
		{126, 125.9033109, 18.84},
		{128, 127.90446128, 31.74},
		{130, 129.906222748, 34.08},
	}},
	{"I", 53, 5, 17, 126.90447, []isotopeData{
		{127, 126.9044719, 100},
	}},
	{"Xe", 54, 5, 18, 131.293, []isotopeData{
		{124, 123.9058920, 0.0952},
		{126, 125.9042983, 0.0890},
		{128, 127.9035310, 1.9102},
		{129, 128.9047808611, 26.4006},
		{130, 129.903509349, 4.0710},
		{131, 130.90508406, 21.2324},
		{132, 131.9041550856, 26.9086},
		{134, 133.90539466, 10.4357},
		{136, 135.907214484, 8.8573},
	}},
	{"Cs", 55, 6, 1, 132.90545196, []isotopeData{
		{133, 132.9054519610, 100},
	}},
	{"Ba", 56, 6, 2, 137.327, []isotopeData{
		{130, 129.9063207, 0.106},
		{132, 131.9050611, 0.101},
		{134, 133.90450818, 2.417},
		{135, 134.90568838, 6.592},
		{136, 135.90457573, 7.854},
		{137, 136.90582714, 11.232},
		{138, 137.90524700, 71.698},
	}},
	{"La", 57, 6, 3, 138.90547, []isotopeData{
		{138, 137.9071149, 0.090},
		{139, 138.9063563, 99.910},
	}},
	{"Ce", 58, 6, 3, 140.116, []isotopeData{
		{136, 135.90712921, 0.185},
		{138, 137.905991, 0.251},
		{140, 139.9054431, 88.450},
		{142, 141.9092504, 11.114},
	}},
	{"Pr", 59, 6, 3, 140.90766, []isotopeData{
		{141, 140.9076576, 100},
	}},
	{"Nd", 60, 6, 3, 144.242, []isotopeData{
		{142, 141.9077290, 27.2},
		{143, 142.9098200, 12.2},
		{144, 143.9100930, 23.8},
		{145, 144.9125793, 8.3},
		{146, 145.9131226, 17.2},
		{148, 147.9168993, 5.7},
		{150, 149.9209022, 5.6},
	}},
	{"Pm", 61, 6, 3, 145, []isotopeData{
		{145, 144.9127559, 0},
	}},
	{"Sm", 62, 6, 3, 150.36, []isotopeData{
		{144, 143.9120065, 3.07},
		{147, 146.9149044, 14.99},
		{148, 147.9148292, 11.24},
		{149, 148.9171921, 13.82},
		{150, 149.9172829, 7.38},
		{152, 151.9197397, 26.75},
		{154, 153.9222169, 22.75},
	}},
	{"Eu", 63, 6, 3, 151.964, []isotopeData{
		{151, 150.9198578, 47.81},
		{153, 152.9212380, 52.19},
	}},
	{"Gd", 64, 6, 3, 157.25, []isotopeData{
		{152, 151.9197995, 0.20},
		{154, 153.9208741, 2.18},
		{155, 154.9226305, 14.80},
		{156, 155.9221312, 20.47},
		{157, 156.9239686, 15.65},
		{158, 157.9241123, 24.84},
		{160, 159.9270624, 21.86},
	}},
	{"Tb", 65, 6, 3, 158.92535, []isotopeData{
		{159, 158.9253547, 100},
	}},
	{"Dy", 66, 6, 3, 162.500, []isotopeData{
		{156, 155.9242847, 0.056},
		{158, 157.9244159, 0.095},
		{160, 159.9252046, 2.329},
		{161, 160.9269405, 18.889},
		{162, 161.9268056, 25.475},
		{163, 162.9287383, 24.896},
		{164, 163.9291819, 28.260},
	}},
	{"Ho", 67, 6, 3, 164.93033, []isotopeData{
		{165, 164.9303288, 100},
	}},
	{"Er", 68, 6, 3, 167.259, []isotopeData{
		{162, 161.9287884, 0.139},
		{164, 163.9292088, 1.601},
		{166, 165.9302995, 33.503},
		{167, 166.9320546, 22.869},
		{168, 167.9323767, 26.978},
		{170, 169.9354702, 14.910},
	}},
	{"Tm", 69, 6, 3, 168.93422, []isotopeData{
		{169, 168.9342179, 100},
	}},
	{"Yb", 70, 6, 3, 173.045, []isotopeData{
		{168, 167.9338896, 0.123},
		{170, 169.9347664, 2.982},
		{171, 170.9363302, 14.09},
		{172, 171.9363859, 21.68},
		{173, 172.9382151, 16.103},
		{174, 173.9388664, 32.026},
		{176, 175.9425764, 12.996},
	}},
	{"Lu", 71, 6, 3, 174.9668, []isotopeData{
		{175, 174.9407752, 97.401},
		{176, 175.9426897, 2.599},
	}},
	{"Hf", 72, 6, 4, 178.49, []isotopeData{
		{174, 173.9400461, 0.16},
		{176, 175.9414076, 5.26},
		{177, 176.9432277, 18.60},
		{178, 177.9437058, 27.28},
		{179, 178.9458232, 13.62},
		{180, 179.9465570, 35.08},
	}},
	{"Ta", 73, 6, 5, 180.94788, []isotopeData{
		{180, 179.9474648, 0.012},
		{181, 180.9479958, 99.988},
	}},
	{"W", 74, 6, 6, 183.84, []isotopeData{
		{180, 179.9467108, 0.12},
		{182, 181.94820394, 26.50},
		{183, 182.95022275, 14.31},
		{184, 183.95093092, 30.64},
		{186, 185.9543628, 28.43},
	}},
	{"Re", 75, 6, 7, 186.207, []isotopeData{
		{185, 184.9529545, 37.40},
		{187, 186.9557501, 62.60},
	}},
	{"Os", 76, 6, 8, 190.23, []isotopeData{
		{184, 183.9524885, 0.02},
		{186, 185.9538350, 1.59},
		{187, 186.9557474, 1.96},
		{188, 187.9558352, 13.24},
		{189, 188.9581442, 16.15},
		{190, 189.9584437, 26.26},
		{192, 191.9614770, 40.78},
	}},
	{"Ir", 77, 6, 9, 192.217, []isotopeData{
		{191, 190.9605893, 37.3},
		{193, 192.9629216, 62.7},
	}},
	{"Pt", 78, 6, 10, 195.084, []isotopeData{
		{190, 189.9599297, 0.012},
		{192, 191.9610387, 0.782},
		{194, 193.9626809, 32.86},
		{195, 194.9647917, 33.78},
		{196, 195.96495209, 25.21},
		{198, 197.9678949, 7.36},
	}},
	{"Au", 79, 6, 11, 196.966569, []isotopeData{
		{197, 196.96656879, 100},
	}},
	{"Hg", 80, 6, 12, 200.592, []isotopeData{
		{196, 195.9658326, 0.15},
		{198, 197.96676860, 9.97},
		{199, 198.96828064, 16.87},
		{200, 199.96832659, 23.10},
		{201, 200.97030284, 13.18},
		{202, 201.97064340, 29.86},
		{204, 203.97349398, 6.87},
	}},
	{"Tl", 81, 6, 13, 204.38, []isotopeData{
		{203, 202.9723446, 29.52},
		{205, 204.9744278, 70.48},
	}},
	{"Pb", 82, 6, 14, 207.2, []isotopeData{
		{204, 203.9730440, 1.4},
		{206, 205.9744657, 24.1},
		{207, 206.9758973, 22.1},
		{208, 207.9766525, 52.4},
	}},
	{"Bi", 83, 6, 15, 208.98040, []isotopeData{
		{209, 208.9803991, 100},
	}},
	{"Po", 84, 6, 16, 209, []isotopeData{
		{209, 208.9824308, 0},
	}},
	{"At", 85, 6, 17, 210, []isotopeData{
		{210, 209.9871479, 0},
	}},
	{"Rn", 86, 6, 18, 222, []isotopeData{
		{222, 222.0175782, 0},
	}},
	{"Fr", 87, 7, 1, 223, []isotopeData{
		{223, 223.0197360, 0},
	}},
	{"Ra", 88, 7, 2, 226, []isotopeData{
		{226, 226.0254103, 0},
	}},
	{"Ac", 89, 7, 3, 227, []isotopeData{
		{227, 227.0277523, 0},
	}},
	{"Th", 90, 7, 3, 232.0377, []isotopeData{
		{230, 230.0331341, 0},
		{232, 232.0380558, 100},
	}},
	{"Pa", 91, 7, 3, 231.03588, []isotopeData{
		{231, 231.0358842, 100},
	}},
	{"U", 92, 7, 3, 238.02891, []isotopeData{
		{234, 234.0409523, 0.0054},
		{235, 235.0439301, 0.7204},
		{238, 238.0507884, 99.2742},
	}},
}
