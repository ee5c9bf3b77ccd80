package engine

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Detector is one independent clause check. Each detector reads the
// lowercased contract text and, when it fires, contributes a fixed
// point value and one finding. Detectors hold no state and never fire
// more than once per document.
//
// Numeric detectors use the first regular-expression match only. When
// a contract states conflicting values in different clauses the first
// one wins; downstream consumers rely on that, so keep it.
type Detector struct {
	Category       string
	Severity       Severity
	Points         int
	Impact         string
	LegalReference string
	Recommendation string
	// Trigger returns the finding description when the detector fires.
	Trigger func(text string) (string, bool)
}

// present fires when the pattern occurs anywhere in the text.
func present(re *regexp.Regexp, desc string) func(string) (string, bool) {
	return func(text string) (string, bool) {
		if re.MatchString(text) {
			return desc, true
		}
		return "", false
	}
}

// anyPresent fires when any of the patterns occurs.
func anyPresent(desc string, res ...*regexp.Regexp) func(string) (string, bool) {
	return func(text string) (string, bool) {
		for _, re := range res {
			if re.MatchString(text) {
				return desc, true
			}
		}
		return "", false
	}
}

// absent fires when the pattern does NOT occur. Several checks flag
// clauses the contract should have but does not mention at all.
func absent(re *regexp.Regexp, desc string) func(string) (string, bool) {
	return func(text string) (string, bool) {
		if !re.MatchString(text) {
			return desc, true
		}
		return "", false
	}
}

var (
	reTerm          = regexp.MustCompile(`prazo.*?(\d+)\s*(ano|anos|meses|mês)`)
	reRenewalWaiver = regexp.MustCompile(`(renuncia|abdica|dispensa).*direito.*(renova[çc][ãa]o|prorrogação)`)
	reNoRenewal     = regexp.MustCompile(`sem.*direito.*(renova[çc][ãa]o|prorrogação)`)
	reNotice        = regexp.MustCompile(`aviso.*pr[ée]vio.*?(\d+)\s*(dia|mês)`)

	reTermPenalty = regexp.MustCompile(`multa.*rescis[óo]ria.*(6|12|18|24|seis|doze|dezoito|vinte e quatro)\s*(mes|alugu[eé])`)
	reLatePenalty = regexp.MustCompile(`multa.*(atraso|mora|inadimpl[êe]ncia).*(20|30|40|50|vinte|trinta)%`)
	reInterest    = regexp.MustCompile(`juros.*?(\d+)%`)

	reNoIndemnity1   = regexp.MustCompile(`benfeitoria.*(sem|n[ãa]o).*indeniza[çc][ãa]o`)
	reNoIndemnity2   = regexp.MustCompile(`n[ãa]o.*ter[áa].*direito.*indeniza[çc][ãa]o.*benfeitoria`)
	rePriorAuth      = regexp.MustCompile(`(qualquer|toda).*altera[çc][ãa]o.*autoriza[çc][ãa]o.*pr[ée]via`)
	reRemoval        = regexp.MustCompile(`(remover|retirar|desfazer).*benfeitoria`)
	reStructuralLoad = regexp.MustCompile(`(proib|n[ãa]o.*permit).*carga.*(estrutural|piso)`)

	reSaleTermination = regexp.MustCompile(`(venda|aliena[çc][ãa]o).*im[óo]vel.*(rescis[ãa]o|rescind|extingue)`)
	rePreference      = regexp.MustCompile(`direito.*prefer[êe]ncia`)
	reViewing         = regexp.MustCompile(`(mostrar|visita).*im[óo]vel.*(qualquer|todo).*hor[áa]rio`)

	reHours      = regexp.MustCompile(`funcionamento.*(\d{1,2}).*às.*(\d{1,2})`)
	reSoundBan   = regexp.MustCompile(`(proib|vedam|n[ãa]o.*permit).*(música|som|aparelho.*sonoro)`)
	reCapacity   = regexp.MustCompile(`capacidade.*m[áa]xima.*?(\d+).*pessoas`)
	reSubleasing = regexp.MustCompile(`(proib|vedam|n[ãa]o.*permit).*subloca[çc][ãa]o`)

	rePropertyTax1  = regexp.MustCompile(`locat[áa]rio.*responsável.*iptu`)
	rePropertyTax2  = regexp.MustCompile(`iptu.*[ée].*encargo.*locat[áa]rio`)
	reCondoFees     = regexp.MustCompile(`locat[áa]rio.*responsável.*(despesa|encargo).*extraordin[áa]ri`)
	reFireInsurance = regexp.MustCompile(`locat[áa]rio.*responsável.*seguro.*inc[êe]ndio`)
	reStructMaint   = regexp.MustCompile(`locat[áa]rio.*responsável.*(reparo|manuten[çc][ãa]o).*(estrutura|telhado|fachada|funda[çc][ãa]o)`)

	reParking    = regexp.MustCompile(`(estacionamento|vaga|garagem)`)
	reOutdoorBan = regexp.MustCompile(`(proib|n[ãa]o.*permit).*área.*externa`)
	reSignage    = regexp.MustCompile(`(proib|restri[çc]).*(placa|faixa|letreiro|sinaliza[çc][ãa]o)`)

	rePowerClause = regexp.MustCompile(`carga.*el[ée]trica.*(\d+).*kva`)
	rePowerValue  = regexp.MustCompile(`(\d+)\s*kva`)
	reRestrooms   = regexp.MustCompile(`(vestiário|banheiro|sanitário)`)
	rePlumbingBan = regexp.MustCompile(`(proib|vedam).*altera[çc][ãa]o.*hidr[áa]ulic`)
	reCeiling     = regexp.MustCompile(`p[ée].*direito.*?(\d+\.?\d*)m`)

	reAccessibility = regexp.MustCompile(`(acessibilidade|acess[íi]vel|rampa|elevador)`)

	rePermits     = regexp.MustCompile(`locat[áa]rio.*responsável.*(alvar[áa]|licen[çc])`)
	reNoOccupancy = regexp.MustCompile(`(sem|n[ãa]o.*possui).*(habite-se|regulariza[çc][ãa]o)`)

	reDeposit        = regexp.MustCompile(`(cau[çc][ãa]o|dep[óo]sito)`)
	reGuarantor      = regexp.MustCompile(`fiador`)
	reSuretyBond     = regexp.MustCompile(`seguro.*fiança`)
	reDepositAmount  = regexp.MustCompile(`cau[çc][ãa]o.*?(\d+)\s*(alugu[eé]|mês)`)
	reAnnualAdjust   = regexp.MustCompile(`reajuste.*anual`)
	reOfficialIndex  = regexp.MustCompile(`(igp-m|ipca|inpc)`)
	reAdjustAbove    = regexp.MustCompile(`reajuste.*(acima|superior|maior)`)
	reRevisionAnyDay = regexp.MustCompile(`revis[ãa]o.*qualquer.*tempo`)

	reInspection = regexp.MustCompile(`vistoria|laudo`)
	reAsIs       = regexp.MustCompile(`(estado.*atual|como.*est[áa])`)

	reThirdParty = regexp.MustCompile(`locat[áa]rio.*responsável.*acidente.*terceiro`)

	// The upper-case class never matches lowercased text, so this
	// detector is dormant in practice. It is part of the shipped
	// scoring behavior; changing it would shift cached scores.
	reVenue        = regexp.MustCompile(`foro.*comarca.*?([A-ZÀÁÉÍÓÚ][a-zàáéíóú\s]+)`)
	reAllowedVenue = regexp.MustCompile(`(s[ãa]o paulo|rio de janeiro|sua cidade)`)
)

// battery is the full detector list, evaluated in order. Every entry
// is a fixed product constant: point values, thresholds, and texts are
// versioned with the binary because cached reports embed the scores
// computed under them.
var battery = []Detector{
	// Category 1: contract term and renewal rights
	{
		Category:       "Prazo Contratual",
		Severity:       SeverityCritical,
		Points:         25,
		Impact:         "Perda do ponto comercial e de todo investimento em equipamentos, reformas e clientela ao final do contrato",
		LegalReference: "Art. 51, Lei 8.245/91",
		Recommendation: "EXIGIR prazo mínimo de 5 anos ininterruptos ou garantia de renovação automática",
		Trigger: func(text string) (string, bool) {
			m := reTerm.FindStringSubmatch(text)
			if m == nil {
				return "", false
			}
			n, err := strconv.Atoi(m[1])
			if err != nil {
				return "", false
			}
			unit := m[2]
			months := n
			if !strings.Contains(unit, "mês") && !strings.Contains(unit, "meses") {
				months = n * 12
			}
			if months >= 60 {
				return "", false
			}
			return fmt.Sprintf("Prazo de apenas %d %s - inferior ao mínimo de 5 anos para direito à renovação compulsória", n, unit), true
		},
	},
	{
		Category:       "Direito à Renovação",
		Severity:       SeverityCritical,
		Points:         30,
		Impact:         "Locador pode exigir desocupação ao término sem qualquer compensação, mesmo com investimentos realizados",
		LegalReference: "Art. 51 e 71, Lei 8.245/91",
		Recommendation: "REMOVER esta cláusula e incluir direito expresso à Ação Renovatória",
		Trigger: anyPresent("Contrato contém renúncia expressa ao direito de renovação compulsória",
			reRenewalWaiver, reNoRenewal),
	},
	{
		Category:       "Aviso Prévio",
		Severity:       SeverityHigh,
		Points:         15,
		Impact:         "Prazo insuficiente para realocação de academia (equipamentos, transferência de alunos, novo ponto)",
		Recommendation: "Negociar aviso prévio mínimo de 180 dias para ambas as partes",
		Trigger: func(text string) (string, bool) {
			m := reNotice.FindStringSubmatch(text)
			if m == nil {
				return "", false
			}
			if n, err := strconv.Atoi(m[1]); err != nil || n >= 90 {
				return "", false
			}
			return fmt.Sprintf("Prazo de aviso prévio de apenas %s %s", m[1], m[2]), true
		},
	},

	// Category 2: penalties and interest
	{
		Category:       "Multa Rescisória",
		Severity:       SeverityCritical,
		Points:         30,
		Impact:         "Oneração excessiva em caso de necessidade de rescisão (ex: problemas estruturais, mudança de negócio)",
		LegalReference: "Art. 4º, Lei 8.245/91 e CDC",
		Recommendation: "Limitar multa a 3 aluguéis, calculada proporcionalmente ao tempo restante do contrato",
		Trigger:        present(reTermPenalty, "Multa rescisória abusiva identificada (6+ aluguéis)"),
	},
	{
		Category:       "Multa por Atraso",
		Severity:       SeverityHigh,
		Points:         20,
		Impact:         "Oneração excessiva em caso de eventual atraso pontual no pagamento",
		LegalReference: "Art. 52, §1º, CDC",
		Recommendation: "Limitar multa a 10% + juros de 1% a.m. + correção monetária",
		Trigger:        present(reLatePenalty, "Multa moratória superior ao limite legal de 10%"),
	},
	{
		Category:       "Juros Moratórios",
		Severity:       SeverityMedium,
		Points:         10,
		Impact:         "Juros excessivos em caso de atraso no pagamento",
		LegalReference: "Art. 406, Código Civil",
		Recommendation: "Limitar juros a 1% ao mês",
		Trigger: func(text string) (string, bool) {
			m := reInterest.FindStringSubmatch(text)
			if m == nil {
				return "", false
			}
			if n, err := strconv.Atoi(m[1]); err != nil || n <= 1 {
				return "", false
			}
			return fmt.Sprintf("Juros de mora de %s%% ao mês (acima do legal)", m[1]), true
		},
	},

	// Category 3: improvements and renovations
	{
		Category:       "Benfeitorias",
		Severity:       SeverityCritical,
		Points:         25,
		Impact:         "Academia investe em reformas, instalações elétricas, hidráulicas, piso, espelhos, ar-condicionado e perde tudo sem indenização",
		LegalReference: "Arts. 35 e 36, Lei 8.245/91",
		Recommendation: "INCLUIR direito à indenização ou retenção por benfeitorias úteis/necessárias autorizadas por escrito",
		Trigger: anyPresent("Contrato proíbe indenização por benfeitorias úteis e necessárias",
			reNoIndemnity1, reNoIndemnity2),
	},
	{
		Category:       "Autorização para Reformas",
		Severity:       SeverityHigh,
		Points:         15,
		Impact:         "Limitação na personalização da academia (pintura, fixação de espelhos, instalação de equipamentos)",
		Recommendation: "Especificar que benfeitorias não estruturais (pintura, decoração, instalações) podem ser feitas mediante notificação, sem necessidade de autorização",
		Trigger:        present(rePriorAuth, "Necessidade de autorização prévia para qualquer alteração no imóvel"),
	},
	{
		Category:       "Remoção de Benfeitorias",
		Severity:       SeverityHigh,
		Points:         20,
		Impact:         "Custo adicional de remoção de instalações fixas (espelhos, pisos emborrachados, ar-condicionado) + custo de restauração",
		Recommendation: "Negociar que benfeitorias autorizadas permaneçam no imóvel sem ônus de remoção",
		Trigger:        present(reRemoval, "Obrigação de remover benfeitorias ao final do contrato"),
	},
	{
		Category:       "Carga Estrutural",
		Severity:       SeverityHigh,
		Points:         18,
		Impact:         "Impossibilidade de instalar equipamentos pesados essenciais para operação da academia",
		Recommendation: "Solicitar laudo estrutural atestando capacidade mínima de 500 kg/m² e incluir no contrato",
		Trigger:        present(reStructuralLoad, "Restrições sobre carga estrutural podem inviabilizar equipamentos de musculação"),
	},

	// Category 4: sale of the property
	{
		Category:       "Venda do Imóvel",
		Severity:       SeverityCritical,
		Points:         30,
		Impact:         "Perda súbita do ponto comercial, clientela e investimentos realizados sem indenização",
		LegalReference: "Art. 8º, Lei 8.245/91 - direito de preferência",
		Recommendation: "INCLUIR cláusula de direito de preferência na compra + manutenção do contrato pelo novo proprietário (art. 8º, Lei 8.245/91)",
		Trigger:        present(reSaleTermination, "Contrato pode ser rescindido automaticamente se o imóvel for vendido"),
	},
	{
		Category:       "Direito de Preferência",
		Severity:       SeverityHigh,
		Points:         20,
		Impact:         "Locatário não terá prioridade de compra caso proprietário decida vender",
		LegalReference: "Art. 27 e 33, Lei 8.245/91",
		Recommendation: "INCLUIR direito de preferência com prazo mínimo de 30 dias para manifestação",
		Trigger:        absent(rePreference, "Ausência de cláusula de direito de preferência na compra do imóvel"),
	},
	{
		Category:       "Visitação do Imóvel",
		Severity:       SeverityMedium,
		Points:         12,
		Impact:         "Interrupção das atividades da academia e constrangimento aos alunos",
		Recommendation: "Limitar visitas a horários específicos (ex: após 20h) e mediante aviso prévio de 48h",
		Trigger:        present(reViewing, "Locador pode mostrar imóvel a qualquer momento sem restrições"),
	},

	// Category 5: use of the property
	{
		Category:       "Horário de Funcionamento",
		Severity:       SeverityCritical,
		Points:         25,
		Impact:         "Inviabiliza operação de academia 24h ou horários estendidos (madrugada/manhã cedo), reduzindo receita",
		Recommendation: "Negociar funcionamento 24h ou mínimo de 5h às 23h, essencial para academias modernas",
		Trigger: func(text string) (string, bool) {
			m := reHours.FindStringSubmatch(text)
			if m == nil {
				return "", false
			}
			start, err1 := strconv.Atoi(m[1])
			end, err2 := strconv.Atoi(m[2])
			if err1 != nil || err2 != nil {
				return "", false
			}
			if end >= 22 && start <= 6 {
				return "", false
			}
			return fmt.Sprintf("Restrição de horário de funcionamento (%dh às %dh)", start, end), true
		},
	},
	{
		Category:       "Uso do Imóvel - Som",
		Severity:       SeverityHigh,
		Points:         20,
		Impact:         "Som ambiente é essencial para ambiente de academia (aulas coletivas, motivação)",
		Recommendation: "Negociar permissão para som em decibéis razoáveis (até 70dB) com isolamento acústico",
		Trigger:        present(reSoundBan, "Proibição ou restrição severa de som/música ambiente"),
	},
	{
		Category:       "Capacidade do Imóvel",
		Severity:       SeverityHigh,
		Points:         15,
		Impact:         "Restringe crescimento da base de alunos e receita da academia",
		Recommendation: "Negociar capacidade proporcional à área (mínimo 1 pessoa a cada 5m²)",
		Trigger: func(text string) (string, bool) {
			m := reCapacity.FindStringSubmatch(text)
			if m == nil {
				return "", false
			}
			if n, err := strconv.Atoi(m[1]); err != nil || n >= 50 {
				return "", false
			}
			return fmt.Sprintf("Limitação de capacidade a apenas %s pessoas", m[1]), true
		},
	},
	{
		Category:       "Sublocação",
		Severity:       SeverityMedium,
		Points:         10,
		Impact:         "Impede parcerias com personal trainers, fisioterapeutas, nutricionistas (receitas complementares)",
		Recommendation: "Permitir sublocação parcial de espaços mediante autorização prévia",
		Trigger:        present(reSubleasing, "Proibição total de sublocação ou parcerias comerciais"),
	},

	// Category 6: costs shifted onto the tenant
	{
		Category:       "IPTU",
		Severity:       SeverityMedium,
		Points:         10,
		Impact:         "Custo adicional mensal que pode variar conforme reavaliação do imóvel",
		LegalReference: "Art. 22, II, Lei 8.245/91 - IPTU pode ser transferido",
		Recommendation: "Se aceitar pagar IPTU, exigir que seja descontado do aluguel ou negociar valor fixo mensal",
		Trigger: anyPresent("IPTU por conta do locatário (embora comum, é obrigação legal do proprietário)",
			rePropertyTax1, rePropertyTax2),
	},
	{
		Category:       "Despesas Extraordinárias",
		Severity:       SeverityHigh,
		Points:         20,
		Impact:         "Custos imprevisíveis (reformas estruturais, pintura externa, elevador) podem onerar o negócio",
		LegalReference: "Art. 22, VIII, Lei 8.245/91",
		Recommendation: "REMOVER esta cláusula - despesas extraordinárias são de responsabilidade do proprietário",
		Trigger:        present(reCondoFees, "Despesas extraordinárias de condomínio por conta do locatário"),
	},
	{
		Category:       "Seguro Incêndio",
		Severity:       SeverityMedium,
		Points:         8,
		Impact:         "Custo adicional que protege o patrimônio do proprietário, não do locatário",
		Recommendation: "Proprietário deve arcar com seguro estrutural; locatário faz seguro de equipamentos e responsabilidade civil",
		Trigger:        present(reFireInsurance, "Seguro incêndio estrutural por conta do locatário"),
	},
	{
		Category:       "Manutenção Estrutural",
		Severity:       SeverityCritical,
		Points:         25,
		Impact:         "Custos altíssimos com reparos em estrutura, telhado, fundação - obrigação legal do proprietário",
		LegalReference: "Art. 22, Lei 8.245/91",
		Recommendation: "REMOVER completamente - manutenções estruturais são SEMPRE do proprietário",
		Trigger:        present(reStructMaint, "Responsabilidade por manutenções estruturais transferida ao locatário"),
	},

	// Category 7: outdoor and common areas
	{
		Category:       "Estacionamento",
		Severity:       SeverityHigh,
		Points:         15,
		Impact:         "Academias necessitam estacionamento adequado - ausência impacta captação de alunos",
		Recommendation: "Garantir mínimo de 1 vaga a cada 50m² de área útil, preferencialmente incluídas no aluguel",
		Trigger:        absent(reParking, "Contrato não menciona estacionamento ou vagas para alunos"),
	},
	{
		Category:       "Uso de Área Externa",
		Severity:       SeverityHigh,
		Points:         18,
		Impact:         "Impede atividades outdoor (funcional, yoga, alongamento), aulas ao ar livre e treinos externos",
		Recommendation: "Negociar uso compartilhado de áreas externas em horários específicos",
		Trigger:        present(reOutdoorBan, "Proibição de uso de áreas externas (jardins, pátios, calçadas)"),
	},
	{
		Category:       "Sinalização",
		Severity:       SeverityMedium,
		Points:         12,
		Impact:         "Dificulta identificação da academia, impactando marketing e captação de novos alunos",
		Recommendation: "Garantir direito a placa luminosa na fachada e sinalização direcional",
		Trigger:        present(reSignage, "Restrições severas para placas, letreiros e identificação visual externa"),
	},

	// Category 8: infrastructure
	{
		Category:       "Infraestrutura Elétrica",
		Severity:       SeverityHigh,
		Points:         20,
		Impact:         "Impossibilidade de operar equipamentos, ar-condicionado, iluminação e som simultaneamente",
		Recommendation: "EXIGIR carga mínima de 75 kVA (trifásico) + laudo elétrico antes de assinar",
		Trigger: func(text string) (string, bool) {
			if !rePowerClause.MatchString(text) {
				return "", false
			}
			m := rePowerValue.FindStringSubmatch(text)
			if m == nil {
				return "", false
			}
			if n, err := strconv.Atoi(m[1]); err != nil || n >= 50 {
				return "", false
			}
			return fmt.Sprintf("Carga elétrica de apenas %s kVA (insuficiente para academia)", m[1]), true
		},
	},
	{
		Category:       "Vestiários",
		Severity:       SeverityMedium,
		Points:         12,
		Impact:         "Vestiários adequados (masculino/feminino com chuveiros) são obrigatórios para academias",
		Recommendation: "Garantir mínimo de 2 vestiários completos com chuveiros (masculino/feminino)",
		Trigger:        absent(reRestrooms, "Contrato não especifica vestiários ou instalações sanitárias"),
	},
	{
		Category:       "Instalações Hidráulicas",
		Severity:       SeverityHigh,
		Points:         15,
		Impact:         "Impossibilita instalação de bebedouros, chuveiros adicionais e pontos de água para limpeza",
		Recommendation: "Permitir alterações hidráulicas mediante projeto aprovado e recomposição ao final",
		Trigger:        present(rePlumbingBan, "Proibição de alterações na rede hidráulica"),
	},
	{
		Category:       "Pé-direito",
		Severity:       SeverityHigh,
		Points:         18,
		Impact:         "Sensação de ambiente apertado, limitação para equipamentos verticais e exercícios com saltos",
		Recommendation: "Ideal: mínimo 3,5m de pé-direito para sensação de amplitude",
		Trigger: func(text string) (string, bool) {
			m := reCeiling.FindStringSubmatch(text)
			if m == nil {
				return "", false
			}
			if v, err := strconv.ParseFloat(m[1], 64); err != nil || v >= 2.8 {
				return "", false
			}
			return fmt.Sprintf("Pé-direito de apenas %sm (inferior ao recomendado)", m[1]), true
		},
	},

	// Category 9: accessibility
	{
		Category:       "Acessibilidade",
		Severity:       SeverityHigh,
		Points:         18,
		Impact:         "NBR 9050 e Estatuto da Pessoa com Deficiência exigem acessibilidade - risco de multas e processos",
		LegalReference: "Lei 13.146/2015 (Estatuto da Pessoa com Deficiência)",
		Recommendation: "EXIGIR que o imóvel tenha rampa de acesso, banheiro adaptado e circulação acessível",
		Trigger:        absent(reAccessibility, "Contrato não menciona conformidade com normas de acessibilidade"),
	},

	// Category 10: permits and regularization
	{
		Category:       "Alvará de Funcionamento",
		Severity:       SeverityMedium,
		Points:         8,
		Impact:         "Normal, mas pode haver impossibilidade de obter alvará por pendências do imóvel",
		Recommendation: "Incluir cláusula de rescisão sem multa se alvará for negado por problemas estruturais do imóvel",
		Trigger:        present(rePermits, "Responsabilidade pela obtenção de alvará transferida ao locatário"),
	},
	{
		Category:       "Regularização do Imóvel",
		Severity:       SeverityCritical,
		Points:         25,
		Impact:         "Impossibilidade de obter alvará de funcionamento, multas da prefeitura, risco de interdição",
		Recommendation: "NÃO ASSINAR contrato de imóvel irregular - exigir certidão de regularização",
		Trigger:        present(reNoOccupancy, "Imóvel sem habite-se ou certidão de regularização"),
	},

	// Category 11: lease guarantees
	{
		Category:       "Garantias Locatícias",
		Severity:       SeverityHigh,
		Points:         15,
		Impact:         "Oneração desnecessária - uma garantia é suficiente",
		LegalReference: "Art. 37, Lei 8.245/91",
		Recommendation: "Negociar apenas UMA garantia (preferencialmente seguro-fiança)",
		Trigger: func(text string) (string, bool) {
			var found []string
			if reDeposit.MatchString(text) {
				found = append(found, "caução")
			}
			if reGuarantor.MatchString(text) {
				found = append(found, "fiador")
			}
			if reSuretyBond.MatchString(text) {
				found = append(found, "seguro-fiança")
			}
			if len(found) < 2 {
				return "", false
			}
			return "Exigência de múltiplas garantias: " + strings.Join(found, ", "), true
		},
	},
	{
		Category:       "Valor da Caução",
		Severity:       SeverityMedium,
		Points:         12,
		Impact:         "Imobilização excessiva de capital de giro necessário para operação da academia",
		Recommendation: "Negociar caução máxima de 3 aluguéis com correção monetária",
		Trigger: func(text string) (string, bool) {
			m := reDepositAmount.FindStringSubmatch(text)
			if m == nil {
				return "", false
			}
			if n, err := strconv.Atoi(m[1]); err != nil || n <= 3 {
				return "", false
			}
			return fmt.Sprintf("Caução de %s aluguéis (acima do usual)", m[1]), true
		},
	},

	// Category 12: rent adjustment
	{
		Category:       "Reajuste de Aluguel",
		Severity:       SeverityHigh,
		Points:         18,
		Impact:         "Insegurança jurídica - locador pode aplicar reajuste arbitrário",
		LegalReference: "Art. 18, Lei 8.245/91",
		Recommendation: "Definir índice oficial (IGP-M ou IPCA) e periodicidade anual",
		Trigger: func(text string) (string, bool) {
			if reAnnualAdjust.MatchString(text) && !reOfficialIndex.MatchString(text) {
				return "Cláusula de reajuste anual sem índice oficial definido", true
			}
			return "", false
		},
	},
	{
		Category:       "Reajuste Abusivo",
		Severity:       SeverityHigh,
		Points:         20,
		Impact:         "Aumento desproporcional do custo fixo, podendo inviabilizar a operação",
		Recommendation: "Limitar reajuste ao IGP-M ou IPCA, o que for menor",
		Trigger:        present(reAdjustAbove, "Reajuste de aluguel acima de índices oficiais"),
	},
	{
		Category:       "Revisão de Aluguel",
		Severity:       SeverityHigh,
		Points:         15,
		Impact:         "Imprevisibilidade financeira e risco de aumento arbitrário",
		Recommendation: "Fixar reajuste APENAS anual pelo índice acordado, sem possibilidade de revisão",
		Trigger:        present(reRevisionAnyDay, "Cláusula permite revisão de aluguel a qualquer momento"),
	},

	// Category 13: inspection and handover condition
	{
		Category:       "Vistoria Inicial",
		Severity:       SeverityHigh,
		Points:         15,
		Impact:         "Ao final, locatário pode ser cobrado por danos preexistentes",
		Recommendation: "EXIGIR laudo de vistoria detalhado com fotos, assinado por ambas as partes, ANTES de assinar contrato",
		Trigger:        absent(reInspection, "Contrato não menciona laudo de vistoria detalhado"),
	},
	{
		Category:       "Estado do Imóvel",
		Severity:       SeverityMedium,
		Points:         12,
		Impact:         "Locatário assume custos de adequação que podem ser elevados",
		Recommendation: "Negociar carência de aluguel proporcional aos investimentos em adequação",
		Trigger:        present(reAsIs, "Imóvel será entregue 'no estado atual' sem reformas"),
	},

	// Category 14: civil liability
	{
		Category:       "Responsabilidade Civil",
		Severity:       SeverityMedium,
		Points:         10,
		Impact:         "Se acidente for por falha estrutural do imóvel, responsabilidade deve ser compartilhada",
		Recommendation: "Especificar que locatário responde apenas por acidentes decorrentes de sua atividade, não de falhas estruturais",
		Trigger:        present(reThirdParty, "Responsabilidade total por acidentes com terceiros atribuída ao locatário"),
	},

	// Category 15: venue
	{
		Category:       "Foro",
		Severity:       SeverityMedium,
		Points:         8,
		Impact:         "Custos e dificuldade logística para eventual ação judicial",
		Recommendation: "Negociar foro na comarca onde o imóvel está localizado",
		Trigger: func(text string) (string, bool) {
			m := reVenue.FindStringSubmatch(text)
			if m == nil {
				return "", false
			}
			if reAllowedVenue.MatchString(strings.ToLower(m[1])) {
				return "", false
			}
			return fmt.Sprintf("Foro definido em %s (pode ser distante)", m[1]), true
		},
	},
}

// Battery returns the detector list for introspection (tooling, docs).
// Callers must not mutate it.
func Battery() []Detector {
	return battery
}
