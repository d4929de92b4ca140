package ecs_test

import "github.com/plus3/hades/ecs"

// registerArrayTypes registers MaxComponentTypes distinct types.
func registerArrayTypes(r *ecs.ComponentRegistry) {
	ecs.MustRegisterComponent[[1]byte](r)
	ecs.MustRegisterComponent[[2]byte](r)
	ecs.MustRegisterComponent[[3]byte](r)
	ecs.MustRegisterComponent[[4]byte](r)
	ecs.MustRegisterComponent[[5]byte](r)
	ecs.MustRegisterComponent[[6]byte](r)
	ecs.MustRegisterComponent[[7]byte](r)
	ecs.MustRegisterComponent[[8]byte](r)
	ecs.MustRegisterComponent[[9]byte](r)
	ecs.MustRegisterComponent[[10]byte](r)
	ecs.MustRegisterComponent[[11]byte](r)
	ecs.MustRegisterComponent[[12]byte](r)
	ecs.MustRegisterComponent[[13]byte](r)
	ecs.MustRegisterComponent[[14]byte](r)
	ecs.MustRegisterComponent[[15]byte](r)
	ecs.MustRegisterComponent[[16]byte](r)
	ecs.MustRegisterComponent[[17]byte](r)
	ecs.MustRegisterComponent[[18]byte](r)
	ecs.MustRegisterComponent[[19]byte](r)
	ecs.MustRegisterComponent[[20]byte](r)
	ecs.MustRegisterComponent[[21]byte](r)
	ecs.MustRegisterComponent[[22]byte](r)
	ecs.MustRegisterComponent[[23]byte](r)
	ecs.MustRegisterComponent[[24]byte](r)
	ecs.MustRegisterComponent[[25]byte](r)
	ecs.MustRegisterComponent[[26]byte](r)
	ecs.MustRegisterComponent[[27]byte](r)
	ecs.MustRegisterComponent[[28]byte](r)
	ecs.MustRegisterComponent[[29]byte](r)
	ecs.MustRegisterComponent[[30]byte](r)
	ecs.MustRegisterComponent[[31]byte](r)
	ecs.MustRegisterComponent[[32]byte](r)
	ecs.MustRegisterComponent[[33]byte](r)
	ecs.MustRegisterComponent[[34]byte](r)
	ecs.MustRegisterComponent[[35]byte](r)
	ecs.MustRegisterComponent[[36]byte](r)
	ecs.MustRegisterComponent[[37]byte](r)
	ecs.MustRegisterComponent[[38]byte](r)
	ecs.MustRegisterComponent[[39]byte](r)
	ecs.MustRegisterComponent[[40]byte](r)
	ecs.MustRegisterComponent[[41]byte](r)
	ecs.MustRegisterComponent[[42]byte](r)
	ecs.MustRegisterComponent[[43]byte](r)
	ecs.MustRegisterComponent[[44]byte](r)
	ecs.MustRegisterComponent[[45]byte](r)
	ecs.MustRegisterComponent[[46]byte](r)
	ecs.MustRegisterComponent[[47]byte](r)
	ecs.MustRegisterComponent[[48]byte](r)
	ecs.MustRegisterComponent[[49]byte](r)
	ecs.MustRegisterComponent[[50]byte](r)
	ecs.MustRegisterComponent[[51]byte](r)
	ecs.MustRegisterComponent[[52]byte](r)
	ecs.MustRegisterComponent[[53]byte](r)
	ecs.MustRegisterComponent[[54]byte](r)
	ecs.MustRegisterComponent[[55]byte](r)
	ecs.MustRegisterComponent[[56]byte](r)
	ecs.MustRegisterComponent[[57]byte](r)
	ecs.MustRegisterComponent[[58]byte](r)
	ecs.MustRegisterComponent[[59]byte](r)
	ecs.MustRegisterComponent[[60]byte](r)
	ecs.MustRegisterComponent[[61]byte](r)
	ecs.MustRegisterComponent[[62]byte](r)
	ecs.MustRegisterComponent[[63]byte](r)
	ecs.MustRegisterComponent[[64]byte](r)
	ecs.MustRegisterComponent[[65]byte](r)
	ecs.MustRegisterComponent[[66]byte](r)
	ecs.MustRegisterComponent[[67]byte](r)
	ecs.MustRegisterComponent[[68]byte](r)
	ecs.MustRegisterComponent[[69]byte](r)
	ecs.MustRegisterComponent[[70]byte](r)
	ecs.MustRegisterComponent[[71]byte](r)
	ecs.MustRegisterComponent[[72]byte](r)
	ecs.MustRegisterComponent[[73]byte](r)
	ecs.MustRegisterComponent[[74]byte](r)
	ecs.MustRegisterComponent[[75]byte](r)
	ecs.MustRegisterComponent[[76]byte](r)
	ecs.MustRegisterComponent[[77]byte](r)
	ecs.MustRegisterComponent[[78]byte](r)
	ecs.MustRegisterComponent[[79]byte](r)
	ecs.MustRegisterComponent[[80]byte](r)
	ecs.MustRegisterComponent[[81]byte](r)
	ecs.MustRegisterComponent[[82]byte](r)
	ecs.MustRegisterComponent[[83]byte](r)
	ecs.MustRegisterComponent[[84]byte](r)
	ecs.MustRegisterComponent[[85]byte](r)
	ecs.MustRegisterComponent[[86]byte](r)
	ecs.MustRegisterComponent[[87]byte](r)
	ecs.MustRegisterComponent[[88]byte](r)
	ecs.MustRegisterComponent[[89]byte](r)
	ecs.MustRegisterComponent[[90]byte](r)
	ecs.MustRegisterComponent[[91]byte](r)
	ecs.MustRegisterComponent[[92]byte](r)
	ecs.MustRegisterComponent[[93]byte](r)
	ecs.MustRegisterComponent[[94]byte](r)
	ecs.MustRegisterComponent[[95]byte](r)
	ecs.MustRegisterComponent[[96]byte](r)
	ecs.MustRegisterComponent[[97]byte](r)
	ecs.MustRegisterComponent[[98]byte](r)
	ecs.MustRegisterComponent[[99]byte](r)
	ecs.MustRegisterComponent[[100]byte](r)
	ecs.MustRegisterComponent[[101]byte](r)
	ecs.MustRegisterComponent[[102]byte](r)
	ecs.MustRegisterComponent[[103]byte](r)
	ecs.MustRegisterComponent[[104]byte](r)
	ecs.MustRegisterComponent[[105]byte](r)
	ecs.MustRegisterComponent[[106]byte](r)
	ecs.MustRegisterComponent[[107]byte](r)
	ecs.MustRegisterComponent[[108]byte](r)
	ecs.MustRegisterComponent[[109]byte](r)
	ecs.MustRegisterComponent[[110]byte](r)
	ecs.MustRegisterComponent[[111]byte](r)
	ecs.MustRegisterComponent[[112]byte](r)
	ecs.MustRegisterComponent[[113]byte](r)
	ecs.MustRegisterComponent[[114]byte](r)
	ecs.MustRegisterComponent[[115]byte](r)
	ecs.MustRegisterComponent[[116]byte](r)
	ecs.MustRegisterComponent[[117]byte](r)
	ecs.MustRegisterComponent[[118]byte](r)
	ecs.MustRegisterComponent[[119]byte](r)
	ecs.MustRegisterComponent[[120]byte](r)
	ecs.MustRegisterComponent[[121]byte](r)
	ecs.MustRegisterComponent[[122]byte](r)
	ecs.MustRegisterComponent[[123]byte](r)
	ecs.MustRegisterComponent[[124]byte](r)
	ecs.MustRegisterComponent[[125]byte](r)
	ecs.MustRegisterComponent[[126]byte](r)
	ecs.MustRegisterComponent[[127]byte](r)
	ecs.MustRegisterComponent[[128]byte](r)
	ecs.MustRegisterComponent[[129]byte](r)
	ecs.MustRegisterComponent[[130]byte](r)
	ecs.MustRegisterComponent[[131]byte](r)
	ecs.MustRegisterComponent[[132]byte](r)
	ecs.MustRegisterComponent[[133]byte](r)
	ecs.MustRegisterComponent[[134]byte](r)
	ecs.MustRegisterComponent[[135]byte](r)
	ecs.MustRegisterComponent[[136]byte](r)
	ecs.MustRegisterComponent[[137]byte](r)
	ecs.MustRegisterComponent[[138]byte](r)
	ecs.MustRegisterComponent[[139]byte](r)
	ecs.MustRegisterComponent[[140]byte](r)
	ecs.MustRegisterComponent[[141]byte](r)
	ecs.MustRegisterComponent[[142]byte](r)
	ecs.MustRegisterComponent[[143]byte](r)
	ecs.MustRegisterComponent[[144]byte](r)
	ecs.MustRegisterComponent[[145]byte](r)
	ecs.MustRegisterComponent[[146]byte](r)
	ecs.MustRegisterComponent[[147]byte](r)
	ecs.MustRegisterComponent[[148]byte](r)
	ecs.MustRegisterComponent[[149]byte](r)
	ecs.MustRegisterComponent[[150]byte](r)
	ecs.MustRegisterComponent[[151]byte](r)
	ecs.MustRegisterComponent[[152]byte](r)
	ecs.MustRegisterComponent[[153]byte](r)
	ecs.MustRegisterComponent[[154]byte](r)
	ecs.MustRegisterComponent[[155]byte](r)
	ecs.MustRegisterComponent[[156]byte](r)
	ecs.MustRegisterComponent[[157]byte](r)
	ecs.MustRegisterComponent[[158]byte](r)
	ecs.MustRegisterComponent[[159]byte](r)
	ecs.MustRegisterComponent[[160]byte](r)
	ecs.MustRegisterComponent[[161]byte](r)
	ecs.MustRegisterComponent[[162]byte](r)
	ecs.MustRegisterComponent[[163]byte](r)
	ecs.MustRegisterComponent[[164]byte](r)
	ecs.MustRegisterComponent[[165]byte](r)
	ecs.MustRegisterComponent[[166]byte](r)
	ecs.MustRegisterComponent[[167]byte](r)
	ecs.MustRegisterComponent[[168]byte](r)
	ecs.MustRegisterComponent[[169]byte](r)
	ecs.MustRegisterComponent[[170]byte](r)
	ecs.MustRegisterComponent[[171]byte](r)
	ecs.MustRegisterComponent[[172]byte](r)
	ecs.MustRegisterComponent[[173]byte](r)
	ecs.MustRegisterComponent[[174]byte](r)
	ecs.MustRegisterComponent[[175]byte](r)
	ecs.MustRegisterComponent[[176]byte](r)
	ecs.MustRegisterComponent[[177]byte](r)
	ecs.MustRegisterComponent[[178]byte](r)
	ecs.MustRegisterComponent[[179]byte](r)
	ecs.MustRegisterComponent[[180]byte](r)
	ecs.MustRegisterComponent[[181]byte](r)
	ecs.MustRegisterComponent[[182]byte](r)
	ecs.MustRegisterComponent[[183]byte](r)
	ecs.MustRegisterComponent[[184]byte](r)
	ecs.MustRegisterComponent[[185]byte](r)
	ecs.MustRegisterComponent[[186]byte](r)
	ecs.MustRegisterComponent[[187]byte](r)
	ecs.MustRegisterComponent[[188]byte](r)
	ecs.MustRegisterComponent[[189]byte](r)
	ecs.MustRegisterComponent[[190]byte](r)
	ecs.MustRegisterComponent[[191]byte](r)
	ecs.MustRegisterComponent[[192]byte](r)
	ecs.MustRegisterComponent[[193]byte](r)
	ecs.MustRegisterComponent[[194]byte](r)
	ecs.MustRegisterComponent[[195]byte](r)
	ecs.MustRegisterComponent[[196]byte](r)
	ecs.MustRegisterComponent[[197]byte](r)
	ecs.MustRegisterComponent[[198]byte](r)
	ecs.MustRegisterComponent[[199]byte](r)
	ecs.MustRegisterComponent[[200]byte](r)
	ecs.MustRegisterComponent[[201]byte](r)
	ecs.MustRegisterComponent[[202]byte](r)
	ecs.MustRegisterComponent[[203]byte](r)
	ecs.MustRegisterComponent[[204]byte](r)
	ecs.MustRegisterComponent[[205]byte](r)
	ecs.MustRegisterComponent[[206]byte](r)
	ecs.MustRegisterComponent[[207]byte](r)
	ecs.MustRegisterComponent[[208]byte](r)
	ecs.MustRegisterComponent[[209]byte](r)
	ecs.MustRegisterComponent[[210]byte](r)
	ecs.MustRegisterComponent[[211]byte](r)
	ecs.MustRegisterComponent[[212]byte](r)
	ecs.MustRegisterComponent[[213]byte](r)
	ecs.MustRegisterComponent[[214]byte](r)
	ecs.MustRegisterComponent[[215]byte](r)
	ecs.MustRegisterComponent[[216]byte](r)
	ecs.MustRegisterComponent[[217]byte](r)
	ecs.MustRegisterComponent[[218]byte](r)
	ecs.MustRegisterComponent[[219]byte](r)
	ecs.MustRegisterComponent[[220]byte](r)
	ecs.MustRegisterComponent[[221]byte](r)
	ecs.MustRegisterComponent[[222]byte](r)
	ecs.MustRegisterComponent[[223]byte](r)
	ecs.MustRegisterComponent[[224]byte](r)
	ecs.MustRegisterComponent[[225]byte](r)
	ecs.MustRegisterComponent[[226]byte](r)
	ecs.MustRegisterComponent[[227]byte](r)
	ecs.MustRegisterComponent[[228]byte](r)
	ecs.MustRegisterComponent[[229]byte](r)
	ecs.MustRegisterComponent[[230]byte](r)
	ecs.MustRegisterComponent[[231]byte](r)
	ecs.MustRegisterComponent[[232]byte](r)
	ecs.MustRegisterComponent[[233]byte](r)
	ecs.MustRegisterComponent[[234]byte](r)
	ecs.MustRegisterComponent[[235]byte](r)
	ecs.MustRegisterComponent[[236]byte](r)
	ecs.MustRegisterComponent[[237]byte](r)
	ecs.MustRegisterComponent[[238]byte](r)
	ecs.MustRegisterComponent[[239]byte](r)
	ecs.MustRegisterComponent[[240]byte](r)
	ecs.MustRegisterComponent[[241]byte](r)
	ecs.MustRegisterComponent[[242]byte](r)
	ecs.MustRegisterComponent[[243]byte](r)
	ecs.MustRegisterComponent[[244]byte](r)
	ecs.MustRegisterComponent[[245]byte](r)
	ecs.MustRegisterComponent[[246]byte](r)
	ecs.MustRegisterComponent[[247]byte](r)
	ecs.MustRegisterComponent[[248]byte](r)
	ecs.MustRegisterComponent[[249]byte](r)
	ecs.MustRegisterComponent[[250]byte](r)
	ecs.MustRegisterComponent[[251]byte](r)
	ecs.MustRegisterComponent[[252]byte](r)
	ecs.MustRegisterComponent[[253]byte](r)
	ecs.MustRegisterComponent[[254]byte](r)
	ecs.MustRegisterComponent[[255]byte](r)
	ecs.MustRegisterComponent[[256]byte](r)
}
