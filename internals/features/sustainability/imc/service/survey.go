package service

// Opção de resposta de uma pergunta do questionário IMC.
// O campo Points acompanha a definição original do produto, mas a fórmula de
// pontuação usa a posição da opção, não este campo (compatibilidade).
type SurveyOption struct {
	Value  string `json:"value"`
	Label  string `json:"label"`
	Points int    `json:"points"`
}

type SurveyQuestion struct {
	ID       string         `json:"id"`
	Question string         `json:"question"`
	Options  []SurveyOption `json:"options"`
}

// SurveyGroup agrupa as perguntas de um indicador (Governança, Materiais...).
type SurveyGroup struct {
	Type      string           `json:"type"`
	Icon      string           `json:"icon"`
	Category  string           `json:"category"` // chave interna do score
	Questions []SurveyQuestion `json:"questions"`
}

func opts(labels ...string) []SurveyOption {
	out := make([]SurveyOption, 0, len(labels))
	for i, l := range labels {
		out = append(out, SurveyOption{
			Value:  string(rune('1' + i)),
			Label:  l,
			Points: i + 1,
		})
	}
	return out
}

// QuestionGroups é a definição estática do questionário IMC, carregada em
// tempo de build. A ordem das opções é do pior para o melhor cenário.
var QuestionGroups = []SurveyGroup{
	{
		Type:     "Governança",
		Icon:     "User",
		Category: CategoryGovernance,
		Questions: []SurveyQuestion{
			{ID: "gov1", Question: "A empresa possui políticas formais de sustentabilidade?", Options: opts(
				"Não possui políticas formais",
				"Possui algumas diretrizes básicas",
				"Possui políticas documentadas",
				"Políticas implementadas",
				"Políticas auditadas e certificadas",
			)},
			{ID: "gov2", Question: "Como é o comprometimento da alta direção com sustentabilidade?", Options: opts(
				"Nenhum comprometimento formal",
				"Comprometimento básico",
				"Comprometimento declarado",
				"Comprometimento com recursos",
				"Liderança ativa em sustentabilidade",
			)},
			{ID: "gov3", Question: "A empresa realiza treinamentos em sustentabilidade?", Options: opts(
				"Não realiza treinamentos",
				"Treinamentos esporádicos",
				"Treinamentos anuais",
				"Programa estruturado de treinamentos",
				"Cultura de aprendizado contínuo",
			)},
			{ID: "gov4", Question: "A empresa possui código de ética relacionado à sustentabilidade?", Options: opts(
				"Não possui",
				"Em elaboração",
				"Possui, mas não divulgado",
				"Divulgado para colaboradores",
				"Divulgado e monitorado",
			)},
			{ID: "gov5", Question: "A empresa possui auditorias de sustentabilidade?", Options: opts(
				"Nunca realizou auditorias",
				"Auditorias esporádicas",
				"Auditorias anuais",
				"Auditorias externas",
				"Auditorias externas e certificações",
			)},
		},
	},
	{
		Type:     "Materiais",
		Icon:     "Package",
		Category: CategoryMaterials,
		Questions: []SurveyQuestion{
			{ID: "mat1", Question: "Qual percentual de materiais reciclados é utilizado?", Options: opts(
				"0-10% materiais reciclados",
				"11-25% materiais reciclados",
				"26-50% materiais reciclados",
				"51-75% materiais reciclados",
				"Mais de 75% materiais reciclados",
			)},
			{ID: "mat2", Question: "A empresa possui fornecedores certificados ambientalmente?", Options: opts(
				"Não verifica certificações",
				"Verifica ocasionalmente",
				"Metade dos fornecedores certificados",
				"Maioria dos fornecedores certificados",
				"Todos os fornecedores certificados",
			)},
			{ID: "mat3", Question: "A empresa utiliza materiais de baixo impacto ambiental?", Options: opts(
				"Nunca utiliza",
				"Raramente utiliza",
				"Utiliza em alguns projetos",
				"Utiliza na maioria dos projetos",
				"Utiliza em todos os projetos",
			)},
			{ID: "mat4", Question: "A empresa possui controle de origem dos materiais?", Options: opts(
				"Não possui controle",
				"Controle manual",
				"Controle digital básico",
				"Controle digital avançado",
				"Controle digital integrado com fornecedores",
			)},
			{ID: "mat5", Question: "A empresa realiza análise de ciclo de vida dos materiais?", Options: opts(
				"Nunca realiza",
				"Raramente realiza",
				"Realiza em alguns projetos",
				"Realiza na maioria dos projetos",
				"Realiza em todos os projetos",
			)},
		},
	},
	{
		Type:     "Energia",
		Icon:     "Zap",
		Category: CategoryEnergy,
		Questions: []SurveyQuestion{
			{ID: "ene1", Question: "A empresa utiliza fontes de energia renovável?", Options: opts(
				"Não utiliza energia renovável",
				"1-25% energia renovável",
				"26-50% energia renovável",
				"51-75% energia renovável",
				"Mais de 75% energia renovável",
			)},
			{ID: "ene2", Question: "Como é o monitoramento do consumo energético?", Options: opts(
				"Não monitora",
				"Controle básico mensal",
				"Monitoramento semanal",
				"Monitoramento diário",
				"Monitoramento em tempo real",
			)},
			{ID: "ene3", Question: "A empresa possui metas de redução de consumo energético?", Options: opts(
				"Não possui metas",
				"Metas informais",
				"Metas anuais",
				"Metas monitoradas",
				"Metas monitoradas e revisadas",
			)},
			{ID: "ene4", Question: "A empresa investe em eficiência energética?", Options: opts(
				"Não investe",
				"Investimentos pontuais",
				"Projetos de eficiência em alguns setores",
				"Projetos em toda a empresa",
				"Projetos contínuos e inovadores",
			)},
			{ID: "ene5", Question: "A empresa divulga publicamente seu desempenho energético?", Options: opts(
				"Não divulga",
				"Divulga internamente",
				"Divulga em relatórios anuais",
				"Divulga em relatórios públicos",
				"Divulga e compara com benchmarks",
			)},
		},
	},
	{
		Type:     "Design Circular",
		Icon:     "RefreshCcw",
		Category: CategoryDesign,
		Questions: []SurveyQuestion{
			{ID: "des1", Question: "Os projetos consideram princípios de economia circular?", Options: opts(
				"Não consideram princípios circulares",
				"Considera ocasionalmente",
				"Considera na maioria dos projetos",
				"Sempre considera com metodologia",
				"Design circular é padrão obrigatório",
			)},
			{ID: "des2", Question: "Como é feita a seleção de materiais nos projetos?", Options: opts(
				"Apenas por custo",
				"Custo e qualidade básica",
				"Inclui critérios ambientais básicos",
				"Avaliação de ciclo de vida simplificada",
				"ACV completa e certificações",
			)},
			{ID: "des3", Question: "A empresa utiliza design para desmontagem e reutilização?", Options: opts(
				"Nunca utiliza",
				"Raramente utiliza",
				"Utiliza em alguns projetos",
				"Utiliza na maioria dos projetos",
				"Utiliza em todos os projetos",
			)},
			{ID: "des4", Question: "A empresa adota BIM para otimizar recursos?", Options: opts(
				"Não utiliza BIM",
				"Utiliza BIM em projetos piloto",
				"Utiliza BIM em alguns projetos",
				"Utiliza BIM na maioria dos projetos",
				"Utiliza BIM em todos os projetos",
			)},
			{ID: "des5", Question: "A empresa realiza análise de ciclo de vida dos projetos?", Options: opts(
				"Nunca realiza",
				"Raramente realiza",
				"Realiza em alguns projetos",
				"Realiza na maioria dos projetos",
				"Realiza em todos os projetos",
			)},
		},
	},
	{
		Type:     "Resíduos",
		Icon:     "Recycle",
		Category: CategoryWaste,
		Questions: []SurveyQuestion{
			{ID: "res1", Question: "Como é feita a segregação de resíduos na obra?", Options: opts(
				"Não há segregação",
				"Segregação básica (2-3 tipos)",
				"Segregação intermediária (4-6 tipos)",
				"Segregação avançada (7+ tipos)",
				"Segregação total com rastreabilidade",
			)},
			{ID: "res2", Question: "Qual percentual de resíduos é destinado para reciclagem?", Options: opts(
				"0-20% reciclado",
				"21-40% reciclado",
				"41-60% reciclado",
				"61-80% reciclado",
				"Mais de 80% reciclado",
			)},
			{ID: "res3", Question: "A empresa possui plano de gerenciamento de resíduos?", Options: opts(
				"Não possui",
				"Plano básico",
				"Plano documentado",
				"Plano implementado",
				"Plano auditado e certificado",
			)},
			{ID: "res4", Question: "A empresa monitora a geração de resíduos?", Options: opts(
				"Não monitora",
				"Monitoramento esporádico",
				"Monitoramento mensal",
				"Monitoramento semanal",
				"Monitoramento em tempo real",
			)},
			{ID: "res5", Question: "A empresa realiza ações para redução de resíduos?", Options: opts(
				"Não realiza ações",
				"Ações pontuais",
				"Ações em alguns projetos",
				"Ações em todos os projetos",
				"Ações contínuas e inovadoras",
			)},
		},
	},
	{
		Type:     "Água",
		Icon:     "Droplet",
		Category: CategoryWater,
		Questions: []SurveyQuestion{
			{ID: "agu1", Question: "A empresa implementa sistemas de reuso de água?", Options: opts(
				"Não reutiliza água",
				"Reuso básico eventual",
				"Sistema simples de reuso",
				"Sistema avançado de reuso",
				"Circuito fechado de água",
			)},
			{ID: "agu2", Question: "Como é feito o controle do consumo de água?", Options: opts(
				"Sem controle específico",
				"Controle mensal básico",
				"Monitoramento semanal",
				"Controle diário com metas",
				"Monitoramento em tempo real",
			)},
			{ID: "agu3", Question: "A empresa possui metas de redução de consumo de água?", Options: opts(
				"Não possui metas",
				"Metas informais",
				"Metas anuais",
				"Metas monitoradas",
				"Metas monitoradas e revisadas",
			)},
			{ID: "agu4", Question: "A empresa investe em eficiência hídrica?", Options: opts(
				"Não investe",
				"Investimentos pontuais",
				"Projetos de eficiência em alguns setores",
				"Projetos em toda a empresa",
				"Projetos contínuos e inovadores",
			)},
			{ID: "agu5", Question: "A empresa divulga publicamente seu desempenho hídrico?", Options: opts(
				"Não divulga",
				"Divulga internamente",
				"Divulga em relatórios anuais",
				"Divulga em relatórios públicos",
				"Divulga e compara com benchmarks",
			)},
		},
	},
}
