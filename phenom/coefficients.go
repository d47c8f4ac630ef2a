package phenom

// Calibrated IMRPhenomD fit coefficients. Each Table is indexed
// [power of ξ][power of η]; see Eval.

// Rho holds the inspiral amplitude corrections ρ1..ρ3.
var Rho = [3]Table{
	// ρ1
	{
		{3931.8979897196696, -17395.758706812805, 0},
		{3132.375545898835, 343965.86092361377, -1216256.5819981997},
		{-70698.00600428853, 1383907.177859705, -3966276.1890979446},
		{-60017.52423652596, 803515.1181825735, -2091710.365941658},
	},
	// ρ2
	{
		{-40105.47653771657, 112253.0169706701, 0},
		{23561.696065836168, -3476180.699403351, 11375936.70849482},
		{754313.1127166454, -13084761.88913465, 36444584.853928134},
		{596226.612472288, -7427790.1143564405, 18928977.514040343},
	},
	// ρ3
	{
		{83208.35471266537, -191237.7264145924, 0},
		{-210916.2454782992, 8717975.08352568, -26914942.420669552},
		{-1988980.6527362722, 30888029.960154563, -83908702.79256162},
		{-1453503.1953446497, 17063528.990822166, -42748659.731120914},
	},
}

// Gamma holds the merger-ringdown amplitude parameters γ1..γ3.
var Gamma = [3]Table{
	// γ1
	{
		{0.006927402739328343, 0.03020474290328911, 0},
		{0.006308024337706171, -0.12074130661131138, 0.26271598905781324},
		{0.0034151773647198794, -0.10779338611188374, 0.27098966966891747},
		{0.0007374185938559283, -0.02749621038376281, 0.0733150789135702},
	},
	// γ2
	{
		{1.010344404799477, 0.0008993122007234548, 0},
		{0.283949116804459, -4.049752962958005, 13.207828172665366},
		{0.10396278486805426, -7.025059158961947, 24.784892370130475},
		{0.03093202475605892, -2.6924023896851663, 9.609374464684983},
	},
	// γ3
	{
		{1.3081615607036106, -0.005537729694807678, 0},
		{-0.06782917938621007, -0.6689834970767117, 3.403147966134083},
		{-0.05296577374411866, -0.9923793203111362, 4.820681208409587},
		{-0.006134139870393713, -0.38429253308696365, 1.7561754421985984},
	},
}

// Collocation is the intermediate amplitude value at the midpoint of the
// amplitude spline interval.
var Collocation = Table{
	{0.8149838730507785, 2.5747553517454658, 0},
	{1.1610198035496786, -2.3627771785551537, 6.771038707057573},
	{0.7570782938606834, -2.7256896890432474, 7.1140380397149965},
	{0.1766934149293479, -0.7978690983168183, 2.1162391502005153},
}

// Sigma holds the inspiral phase corrections σ1..σ4.
var Sigma = [4]Table{
	// σ1
	{
		{2096.551999295543, 1463.7493168261553, 0},
		{1312.5493286098522, 18307.330017082117, -43534.1440746107},
		{-833.2889543511114, 32047.31997183187, -108609.45037520859},
		{452.25136398112204, 8353.439546391714, -44531.3250037322},
	},
	// σ2
	{
		{-10114.056472621156, -44631.01109458185, 0},
		{-6541.308761668722, -266959.23419307504, 686328.3229317984},
		{3405.6372187679685, -437507.7208209015, 1631817.1307344697},
		{-7462.648563007646, -114585.25177153319, 674402.4689098676},
	},
	// σ3
	{
		{22933.658273436497, 230960.00814979506, 0},
		{14961.083974183695, 1194018.1342318142, -3104223.9693052764},
		{-3038.166617199259, 1872032.2849093592, -7309145.012085539},
		{42738.22871475411, 467502.018616601, -3064853.498512499},
	},
	// σ4
	{
		{-14621.71522218357, -377812.8579387104, 0},
		{-9608.682631509726, -1710892.5257214056, 4332924.601416521},
		{-22366.683262266528, -2501971.6386377467, 10274495.902259542},
		{-85360.30079034246, -570025.3441737515, 4396844.346849777},
	},
}

// Beta holds the intermediate phase parameters β1..β3.
var Beta = [3]Table{
	// β1
	{
		{97.89747327985583, -42.659730877489224, 0},
		{153.48421037904913, -1417.0620760768954, 2752.8614143665027},
		{138.7406469558649, -1433.6585075135881, 2857.7418952430758},
		{41.025109467376126, -423.680737974639, 850.3594335657173},
	},
	// β2
	{
		{-3.282701958759534, -9.051384468245866, 0},
		{-12.415449742258042, 55.4716447709787, -106.05109938966335},
		{-11.953044553690658, 76.80704618365418, -155.33172948098394},
		{-3.4129261592393263, 25.572377569952536, -54.408036707740465},
	},
	// β3
	{
		{-2.5156429818799565e-05, 1.9750256942201327e-05, 0},
		{-1.8370671469295915e-05, 2.1886317041311973e-05, 8.250240316860033e-05},
		{7.157371250566708e-06, -5.5780000112270685e-05, 0.00019142082884072178},
		{5.447166261464217e-06, -3.220610095021982e-05, 7.974016714984341e-05},
	},
}

// Alpha holds the merger-ringdown phase parameters α1..α5.
var Alpha = [5]Table{
	// α1
	{
		{43.31514709695348, 638.6332679188081, 0},
		{-32.85768747216059, 2415.8938269370315, -5766.875169379177},
		{-61.85459307173841, 2953.967762459948, -8986.29057591497},
		{-21.571435779762044, 981.2158224673428, -3239.5664895930286},
	},
	// α2
	{
		{-0.07020209449091723, -0.16269798450687084, 0},
		{-0.1872514685185499, 1.138313650449945, -2.8334196304430046},
		{-0.17137955686840617, 1.7197549338119527, -4.539717148261272},
		{-0.049983437357548705, 0.6062072055948309, -1.682769616644546},
	},
	// α3
	{
		{9.5988072383479, -397.05438595557433, 0},
		{16.202126189517813, -1574.8286986717037, 3600.3410843831093},
		{27.092429659075467, -1786.482357315139, 5152.919378666511},
		{11.175710130033895, -577.7999423177481, 1808.730762932043},
	},
	// α4
	{
		{-0.02989487384493607, 1.4022106448583738, 0},
		{-0.07356049468633846, 0.8337006542278661, 0.2240008282397391},
		{-0.055202870001177226, 0.5667186343606578, 0.7186931973380503},
		{-0.015507437354325743, 0.15750322779277187, 0.21076815715176228},
	},
	// α5
	{
		{0.9974408278363099, -0.007884449714907203, 0},
		{-0.059046901195591035, 1.3958712396764088, -4.516631601676276},
		{-0.05585343136869692, 1.7516580039343603, -5.990208965347804},
		{-0.017945336522161195, 0.5965097794825992, -2.0608879367971804},
	},
}

// finalSpinTable is indexed [power of s][power of η].
var finalSpinTable = [5][5]float64{
	{0, 3.4641016151377544, -4.399247300629289, 9.397292189321194, -13.180949901606242},
	{1.0, -0.0850917821418767, -5.837029316602263, 0, 0},
	{0, 0.1014665242971878, -2.0967746996832157, 0, 0},
	{0, -1.3546806617824356, 4.108962025369336, 0, 0},
	{0, -0.8676969352555539, 2.064046835273906, 0, 0},
}

// ringdownPade approximates the ℓ=m=2, n=0 quasi-normal-mode frequency
// (geometric units) as a function of the final spin.
var ringdownPade = pade{
	num: []float64{0.05861676554835537, -0.23410600944120608, 0.3658643699087593, -0.2766550515215646, 0.0977319981242281, -0.0098412002706085, -0.001870590074818387, 0.00025977104185271086},
	den: []float64{1.0, -4.399647025867921, 7.850351040834902, -7.238266744353956, 3.6232634610532948, -0.937595292306986, 0.10476816849510072, -0.002873310436919677},
}

// dampingPade approximates the ℓ=m=2, n=0 damping frequency 1/(2πτ)
// (geometric units) as a function of the final spin.
var dampingPade = pade{
	num: []float64{0.013833191601443959, -0.04771272382890575, 0.05948894618772877, -0.029993674043476595, 0.003214499371742793, 0.0011671853988593978, 2.579680379680163e-06},
	den: []float64{1.0, -3.520819816078105, 4.650487709867219, -2.761774903535491, 0.6557344748542046, -0.02240787184138633, -0.0012151263005801475},
}
